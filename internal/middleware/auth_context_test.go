package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-wellness-web/internal/adapters/auth/cookiejwt"
	mem "pet-wellness-web/internal/adapters/storage/memory"
	"pet-wellness-web/internal/domain/users"
	"pet-wellness-web/internal/session"
)

func newSessionHandler(t *testing.T, store session.Store) (http.Handler, *string) {
	t.Helper()
	var seen string
	h := SessionContext(SessionOptions{
		Store: store,
		Codec: cookiejwt.New("test-secret", time.Hour),
		TTL:   time.Hour,
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sc, ok := GetSession(r.Context())
		if !ok {
			t.Fatalf("expected session in context")
		}
		seen = sc.ID()
		w.WriteHeader(http.StatusNoContent)
	}))
	return h, &seen
}

func sessionCookie(res *http.Response) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

func TestSessionContext_IssuesCookieAndReusesIt(t *testing.T) {
	h, seen := newSessionHandler(t, mem.NewSessionStore())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	c := sessionCookie(rec.Result())
	if c == nil {
		t.Fatalf("expected %s cookie on first request", CookieName)
	}
	if !c.HttpOnly || c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected HttpOnly+Lax cookie, got %+v", c)
	}
	first := *seen
	if first == "" {
		t.Fatalf("expected a session id")
	}

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(c)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if *seen != first {
		t.Fatalf("expected same session id %q, got %q", first, *seen)
	}
	if sessionCookie(rec.Result()) != nil {
		t.Fatalf("expected no cookie re-issue for a fresh cookie")
	}
}

func TestSessionContext_TamperedCookieStartsNewSession(t *testing.T) {
	h, seen := newSessionHandler(t, mem.NewSessionStore())

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-jwt"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if *seen == "" || sessionCookie(rec.Result()) == nil {
		t.Fatalf("expected a new session and cookie, got id=%q", *seen)
	}
}

func TestSessionContext_LoadsPersistedState(t *testing.T) {
	store := mem.NewSessionStore()
	codec := cookiejwt.New("test-secret", time.Hour)

	token := "backend-token"
	if err := store.Save(context.Background(), "sid-1", session.Patch{
		Token: &token,
		User:  &users.User{ID: "u1", Role: users.RolePetOwner, OnboardingStep: 1},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	value, err := codec.Issue("sid-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var got session.State
	h := SessionContext(SessionOptions{Store: store, Codec: codec, TTL: time.Hour})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sc, _ := GetSession(r.Context())
			got = sc.Get()
		}))

	req := httptest.NewRequest(http.MethodGet, "/add-pet", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: value})
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got.Token != token || got.User == nil || got.User.OnboardingStep != 1 {
		t.Fatalf("unexpected state: %+v", got)
	}
}

func TestRequireToken(t *testing.T) {
	store := mem.NewSessionStore()
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	// sin middleware de sesión
	rec := httptest.NewRecorder()
	RequireToken(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pets", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rec.Code)
	}

	sc, err := session.Open(context.Background(), store, "sid-2")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/pets", nil)
	req = req.WithContext(WithSession(req.Context(), sc))
	rec = httptest.NewRecorder()
	RequireToken(ok).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	token := "tok"
	if err := sc.Set(context.Background(), session.Patch{Token: &token}); err != nil {
		t.Fatalf("set: %v", err)
	}
	rec = httptest.NewRecorder()
	RequireToken(ok).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rec.Code)
	}
}

func TestRecover(t *testing.T) {
	h := Recover(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
