package session

import (
	"context"
	"sync"
)

// Context es el dueño único del estado de sesión durante un request.
// Vistas, guard y controller leen/escriben solo a través de él.
type Context struct {
	store Store
	id    string

	mu    sync.RWMutex
	state State

	// No persistidos.
	Loading bool
	Error   string
}

// Open carga el estado persistido de id.
func Open(ctx context.Context, store Store, id string) (*Context, error) {
	st, err := store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Context{store: store, id: id, state: st}, nil
}

func (c *Context) ID() string { return c.id }

// Get devuelve una copia del estado actual.
func (c *Context) Get() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	st := State{Token: c.state.Token}
	if c.state.User != nil {
		u := *c.state.User
		st.User = &u
	}
	if c.state.Pet != nil {
		p := *c.state.Pet
		st.Pet = &p
	}
	return st
}

// Set persiste p y recién después actualiza la copia en memoria.
func (c *Context) Set(ctx context.Context, p Patch) error {
	if p.IsEmpty() {
		return nil
	}
	if err := c.store.Save(ctx, c.id, p); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if p.Token != nil {
		c.state.Token = *p.Token
	}
	if p.User != nil {
		u := *p.User
		c.state.User = &u
	}
	if p.Pet != nil {
		pt := *p.Pet
		c.state.Pet = &pt
	}
	return nil
}

// Reload vuelve a leer el store; otro request de la misma sesión pudo escribir
// después de Open.
func (c *Context) Reload(ctx context.Context) error {
	st, err := c.store.Load(ctx, c.id)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.state = st
	c.mu.Unlock()
	return nil
}

// Clear borra token/user/pet. El estado en memoria se limpia aunque el store falle.
func (c *Context) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.state = State{}
	c.mu.Unlock()

	return c.store.Clear(ctx, c.id)
}
