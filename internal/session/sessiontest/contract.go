// Package sessiontest tiene el contrato común que todo session.Store debe cumplir.
package sessiontest

import (
	"context"
	"testing"
	"time"

	"pet-wellness-web/internal/domain/pets"
	"pet-wellness-web/internal/domain/users"
	"pet-wellness-web/internal/session"
)

// RunStoreContract ejercita Load/Save/Clear sobre un store vacío.
func RunStoreContract(t *testing.T, store session.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("unknown id loads empty state", func(t *testing.T) {
		st, err := store.Load(ctx, "missing-session")
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if st.Token != "" || st.User != nil || st.Pet != nil {
			t.Fatalf("expected empty state, got %#v", st)
		}
	})

	t.Run("empty id is rejected", func(t *testing.T) {
		if _, err := store.Load(ctx, " "); err == nil {
			t.Fatalf("expected error for empty id")
		}
	})

	t.Run("partial saves merge", func(t *testing.T) {
		id := "contract-merge"
		tok := "tok-1"
		u := &users.User{ID: "u-1", Role: users.RolePetOwner, OnboardingStep: 1, FirstName: "Ana"}

		if err := store.Save(ctx, id, session.Patch{Token: &tok, User: u}); err != nil {
			t.Fatalf("Save #1 error: %v", err)
		}
		if err := store.Save(ctx, id, session.Patch{Pet: &pets.Pet{ID: "p-1", Name: "Milo"}}); err != nil {
			t.Fatalf("Save #2 error: %v", err)
		}

		st, err := store.Load(ctx, id)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if st.Token != tok {
			t.Fatalf("expected token %q, got %q", tok, st.Token)
		}
		if st.User == nil || st.User.FirstName != "Ana" || st.User.OnboardingStep != 1 {
			t.Fatalf("unexpected user: %#v", st.User)
		}
		if st.Pet == nil || st.Pet.Name != "Milo" {
			t.Fatalf("unexpected pet: %#v", st.Pet)
		}
	})

	t.Run("save overwrites user", func(t *testing.T) {
		id := "contract-overwrite"
		if err := store.Save(ctx, id, session.Patch{User: &users.User{ID: "u-1", OnboardingStep: 0}}); err != nil {
			t.Fatalf("Save error: %v", err)
		}
		if err := store.Save(ctx, id, session.Patch{User: &users.User{ID: "u-1", OnboardingStep: 2}}); err != nil {
			t.Fatalf("Save error: %v", err)
		}
		st, _ := store.Load(ctx, id)
		if st.User == nil || st.User.OnboardingStep != 2 {
			t.Fatalf("expected step 2, got %#v", st.User)
		}
	})

	t.Run("clear removes token user and pet", func(t *testing.T) {
		id := "contract-clear"
		tok := "tok-2"
		_ = store.Save(ctx, id, session.Patch{Token: &tok, User: &users.User{ID: "u-2"}, Pet: &pets.Pet{Name: "Luna"}})

		if err := store.Clear(ctx, id); err != nil {
			t.Fatalf("Clear error: %v", err)
		}
		st, err := store.Load(ctx, id)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if st.Token != "" || st.User != nil || st.Pet != nil {
			t.Fatalf("expected cleared state, got %#v", st)
		}
	})

	t.Run("clear of unknown id succeeds", func(t *testing.T) {
		if err := store.Clear(ctx, "never-saved"); err != nil {
			t.Fatalf("Clear error: %v", err)
		}
	})
}

// RunSlidingExpiry verifica que leer una sesión la mantiene viva: una sesión que solo se lee
// sobrevive varios ttl seguidos y expira cuando deja de usarse.
// expire aplica la expiración del store (redis expira solo; postgres necesita PurgeIdle).
func RunSlidingExpiry(t *testing.T, store session.Store, ttl time.Duration, expire func(ctx context.Context) error) {
	t.Helper()
	ctx := context.Background()
	id := "contract-sliding"
	tok := "tok-sliding"

	if err := store.Save(ctx, id, session.Patch{Token: &tok}); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	step := ttl * 6 / 10
	for i := 0; i < 3; i++ {
		time.Sleep(step)
		if err := expire(ctx); err != nil {
			t.Fatalf("expire error: %v", err)
		}
		st, err := store.Load(ctx, id)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if st.Token != tok {
			t.Fatalf("read #%d: session expired although it was in use", i+1)
		}
	}

	time.Sleep(ttl + ttl/2)
	if err := expire(ctx); err != nil {
		t.Fatalf("expire error: %v", err)
	}
	st, err := store.Load(ctx, id)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if st.Token != "" {
		t.Fatalf("expected idle session to expire, got %#v", st)
	}
}
