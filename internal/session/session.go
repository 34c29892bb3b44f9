package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pet-wellness-web/internal/domain/pets"
	"pet-wellness-web/internal/domain/users"
)

// Keys persistidas por sesión. Clear las borra juntas.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyPet   = "pet"
)

var Keys = []string{KeyToken, KeyUser, KeyPet}

var ErrInvalidID = errors.New("session: invalid id")

// State es lo persistido de una sesión. User/Pet nil = ausente.
type State struct {
	Token string
	User  *users.User
	Pet   *pets.Pet
}

// Patch es una escritura parcial: nil = no tocar.
type Patch struct {
	Token *string
	User  *users.User
	Pet   *pets.Pet
}

func (p Patch) IsEmpty() bool {
	return p.Token == nil && p.User == nil && p.Pet == nil
}

// Store persiste el estado de sesión por id (cookie).
// Load de un id desconocido devuelve State vacío, no error.
type Store interface {
	Load(ctx context.Context, id string) (State, error)
	Save(ctx context.Context, id string, p Patch) error
	Clear(ctx context.Context, id string) error
}

// Encode serializa un Patch a pares key/value (user y pet como JSON).
func Encode(p Patch) (map[string]string, error) {
	out := make(map[string]string, 3)
	if p.Token != nil {
		out[KeyToken] = *p.Token
	}
	if p.User != nil {
		b, err := json.Marshal(p.User)
		if err != nil {
			return nil, fmt.Errorf("session: encode user: %w", err)
		}
		out[KeyUser] = string(b)
	}
	if p.Pet != nil {
		b, err := json.Marshal(p.Pet)
		if err != nil {
			return nil, fmt.Errorf("session: encode pet: %w", err)
		}
		out[KeyPet] = string(b)
	}
	return out, nil
}

// Decode reconstruye State desde los pares persistidos. Keys ausentes => campo ausente.
func Decode(fields map[string]string) (State, error) {
	var st State
	st.Token = fields[KeyToken]

	if raw := strings.TrimSpace(fields[KeyUser]); raw != "" {
		var u users.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			return State{}, fmt.Errorf("session: decode user: %w", err)
		}
		st.User = &u
	}
	if raw := strings.TrimSpace(fields[KeyPet]); raw != "" {
		var p pets.Pet
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return State{}, fmt.Errorf("session: decode pet: %w", err)
		}
		st.Pet = &p
	}
	return st, nil
}

// ValidateID rechaza ids vacíos; los stores lo llaman antes de tocar storage.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidID
	}
	return nil
}
