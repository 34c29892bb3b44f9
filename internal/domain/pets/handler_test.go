package pets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-wellness-web/internal/platform/httpclient"

	"github.com/go-chi/chi/v5"
)

type fakeGateway struct {
	created []Input
	updated map[string]Input
	deleted []string
	tokens  []string
	err     error
}

func (g *fakeGateway) CreatePet(_ context.Context, token string, in Input) (Pet, error) {
	g.tokens = append(g.tokens, token)
	g.created = append(g.created, in)
	return Pet{ID: "p1", Name: in.Name, Health: in.Health}, g.err
}

func (g *fakeGateway) ListPets(_ context.Context, token string) ([]Pet, error) {
	g.tokens = append(g.tokens, token)
	return nil, g.err
}

func (g *fakeGateway) GetPet(_ context.Context, token, id string) (Pet, error) {
	g.tokens = append(g.tokens, token)
	return Pet{ID: id, Name: "Milo"}, g.err
}

func (g *fakeGateway) UpdatePet(_ context.Context, _ string, id string, in Input) (Pet, error) {
	if g.updated == nil {
		g.updated = map[string]Input{}
	}
	g.updated[id] = in
	return Pet{ID: id, Name: in.Name}, g.err
}

func (g *fakeGateway) DeletePet(_ context.Context, _ string, id string) error {
	g.deleted = append(g.deleted, id)
	return g.err
}

func newRouter(gw Gateway) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, gw, func(context.Context) string { return "tok" })
	return r
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreatePet_AppliesDefaultsAndReturns201(t *testing.T) {
	gw := &fakeGateway{}
	rec := do(newRouter(gw), http.MethodPost, "/pets/", `{"name":"Milo","species":"Dog"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(gw.created) != 1 || gw.created[0].Health != HealthUnknown || gw.created[0].Temperament != TemperamentUnknown {
		t.Fatalf("expected Unknown defaults sent, got %+v", gw.created)
	}
	if gw.tokens[0] != "tok" {
		t.Fatalf("expected session token forwarded, got %q", gw.tokens[0])
	}
	var p Pet
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil || p.ID != "p1" {
		t.Fatalf("unexpected body %s (%v)", rec.Body.String(), err)
	}
}

func TestCreatePet_ValidatesBeforeBackend(t *testing.T) {
	gw := &fakeGateway{}

	rec := do(newRouter(gw), http.MethodPost, "/pets/", `{"name":"Milo","species":"Parrot"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	rec = do(newRouter(gw), http.MethodPost, "/pets/", `{"name":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for broken json, got %d", rec.Code)
	}
	if len(gw.created) != 0 {
		t.Fatalf("backend should not be called")
	}
}

func TestPets_ReadUpdateDelete(t *testing.T) {
	gw := &fakeGateway{}
	h := newRouter(gw)

	if rec := do(h, http.MethodGet, "/pets/", ""); rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty list, got %d %s", rec.Code, rec.Body.String())
	}
	if rec := do(h, http.MethodGet, "/pets/p9", ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"id":"p9"`) {
		t.Fatalf("expected pet p9, got %d %s", rec.Code, rec.Body.String())
	}
	if rec := do(h, http.MethodPut, "/pets/p9", `{"name":"Luna"}`); rec.Code != http.StatusOK || gw.updated["p9"].Name != "Luna" {
		t.Fatalf("expected update of p9, got %d %+v", rec.Code, gw.updated)
	}
	if rec := do(h, http.MethodDelete, "/pets/p9", ""); rec.Code != http.StatusNoContent || len(gw.deleted) != 1 || gw.deleted[0] != "p9" {
		t.Fatalf("expected 204 for p9, got %d %v", rec.Code, gw.deleted)
	}
}

func TestPets_BackendErrors(t *testing.T) {
	gw := &fakeGateway{err: &httpclient.APIError{Status: http.StatusNotFound, Message: "Pet not found"}}
	rec := do(newRouter(gw), http.MethodGet, "/pets/p404", "")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "Pet not found") {
		t.Fatalf("expected relayed 404, got %d %s", rec.Code, rec.Body.String())
	}

	gw.err = &httpclient.NetworkError{Err: context.DeadlineExceeded}
	rec = do(newRouter(gw), http.MethodDelete, "/pets/p1", "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}
