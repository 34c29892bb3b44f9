package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pet-wellness-web/internal/session"
)

// SessionStore guarda una fila por (session_id, key): token, user, pet.
type SessionStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db, now: time.Now}
}

func (s *SessionStore) Load(ctx context.Context, id string) (session.State, error) {
	if err := session.ValidateID(id); err != nil {
		return session.State{}, err
	}

	// Leer cuenta como actividad: PurgeIdle mira updated_at.
	if _, err := s.db.ExecContext(ctx, `
		UPDATE session_values SET updated_at = $2 WHERE session_id = $1
	`, id, s.now().UTC()); err != nil {
		return session.State{}, fmt.Errorf("touch session: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT key, value
		FROM session_values
		WHERE session_id = $1
	`, id)
	if err != nil {
		return session.State{}, err
	}
	defer rows.Close()

	fields := make(map[string]string, len(session.Keys))
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return session.State{}, err
		}
		fields[k] = v
	}
	if err := rows.Err(); err != nil {
		return session.State{}, err
	}

	return session.Decode(fields)
}

// Save hace upsert de cada key presente en el patch, en una sola transacción.
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

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := s.now().UTC()
	for k, v := range fields {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO session_values (session_id, key, value, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (session_id, key)
			DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
		`, id, k, v, now); err != nil {
			return fmt.Errorf("save session key %s: %w", k, err)
		}
	}

	return tx.Commit()
}

func (s *SessionStore) Clear(ctx context.Context, id string) error {
	if err := session.ValidateID(id); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM session_values WHERE session_id = $1`, id)
	return err
}

// PurgeIdle borra sesiones sin lecturas ni escrituras desde hace más de ttl.
func (s *SessionStore) PurgeIdle(ctx context.Context, ttl time.Duration) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM session_values
		WHERE session_id IN (
			SELECT session_id FROM session_values
			GROUP BY session_id
			HAVING max(updated_at) < $1
		)
	`, s.now().UTC().Add(-ttl))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
