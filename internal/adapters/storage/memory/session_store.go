package memory

import (
	"context"
	"sync"

	"pet-wellness-web/internal/session"
)

type sessionStore struct {
	mu   sync.RWMutex
	byID map[string]map[string]string
}

func NewSessionStore() session.Store {
	return &sessionStore{
		byID: make(map[string]map[string]string),
	}
}

func (s *sessionStore) Load(ctx context.Context, id string) (session.State, error) {
	if err := session.ValidateID(id); err != nil {
		return session.State{}, err
	}

	s.mu.RLock()
	fields := s.byID[id]
	cp := make(map[string]string, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	s.mu.RUnlock()

	return session.Decode(cp)
}

func (s *sessionStore) Save(ctx context.Context, id string, p session.Patch) error {
	if err := session.ValidateID(id); err != nil {
		return err
	}
	fields, err := session.Encode(p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.byID[id]
	if !ok {
		cur = make(map[string]string, len(fields))
		s.byID[id] = cur
	}
	for k, v := range fields {
		cur[k] = v
	}
	return nil
}

func (s *sessionStore) Clear(ctx context.Context, id string) error {
	if err := session.ValidateID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
	return nil
}
