package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pet-wellness-web/internal/session"
)

// SessionStore guarda cada sesión como hash session:<id> con campos token/user/pet.
// Cada Load y cada Save renuevan el TTL (expiración deslizante).
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Load(ctx context.Context, id string) (session.State, error) {
	if err := session.ValidateID(id); err != nil {
		return session.State{}, err
	}
	key := s.key(id)
	var all *redis.MapStringStringCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		all = pipe.HGetAll(ctx, key)
		if s.ttl > 0 {
			// sobre una key inexistente no hace nada
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return session.State{}, fmt.Errorf("load session: %w", err)
	}
	return session.Decode(all.Val())
}

func (s *SessionStore) Save(ctx context.Context, id string, p session.Patch) error {
	if err := session.ValidateID(id); err != nil {
		return err
	}
	fields, err := session.Encode(p)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	values := make(map[string]any, len(fields))
	for k, v := range fields {
		values[k] = v
	}

	key := s.key(id)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, values)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context, id string) error {
	if err := session.ValidateID(id); err != nil {
		return err
	}
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(id string) string {
	return "session:" + id
}
