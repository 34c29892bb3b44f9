package appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-wellness-web/internal/platform/httpclient"

	"github.com/go-chi/chi/v5"
)

type fakeGateway struct {
	created []Input
	ids     []string
	err     error
}

func (g *fakeGateway) CreateAppointment(_ context.Context, _ string, in Input) (Appointment, error) {
	g.created = append(g.created, in)
	return Appointment{ID: "a1", Pet: in.Pet, Veterinarian: in.Veterinarian, Date: in.Date, Status: StatusPending}, g.err
}

func (g *fakeGateway) ListAppointments(context.Context, string) ([]Appointment, error) {
	return nil, g.err
}

func (g *fakeGateway) GetAppointment(_ context.Context, _ string, id string) (Appointment, error) {
	g.ids = append(g.ids, id)
	return Appointment{ID: id}, g.err
}

func (g *fakeGateway) UpdateAppointment(_ context.Context, _ string, id string, in Input) (Appointment, error) {
	g.ids = append(g.ids, id)
	return Appointment{ID: id, Status: in.Status}, g.err
}

func (g *fakeGateway) DeleteAppointment(_ context.Context, _ string, id string) error {
	g.ids = append(g.ids, id)
	return g.err
}

func newRouter(gw Gateway) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, gw, func(context.Context) string { return "tok" })
	return r
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestCreateAppointment(t *testing.T) {
	gw := &fakeGateway{}
	rec := serve(newRouter(gw), http.MethodPost, "/appointments/", `{"pet":"p1","veterinarian":"v1","date":"2026-11-02T10:00:00Z"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(gw.created) != 1 || gw.created[0].Veterinarian != "v1" {
		t.Fatalf("unexpected backend input %+v", gw.created)
	}
}

func TestCreateAppointment_ValidatesBeforeBackend(t *testing.T) {
	gw := &fakeGateway{}
	h := newRouter(gw)

	// falta veterinarian
	if rec := serve(h, http.MethodPost, "/appointments/", `{"pet":"p1","date":"2026-11-02"}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if rec := serve(h, http.MethodPut, "/appointments/a1", `{"pet":"p1","veterinarian":"v1","date":"2026-11-02","status":"lost"}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown status, got %d", rec.Code)
	}
	if len(gw.created) != 0 || len(gw.ids) != 0 {
		t.Fatalf("backend should not be called")
	}
}

func TestAppointments_ReadUpdateDelete(t *testing.T) {
	gw := &fakeGateway{}
	h := newRouter(gw)

	if rec := serve(h, http.MethodGet, "/appointments/", ""); rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty list, got %d %s", rec.Code, rec.Body.String())
	}
	if rec := serve(h, http.MethodGet, "/appointments/a7", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec := serve(h, http.MethodPut, "/appointments/a7", `{"pet":"p1","veterinarian":"v1","date":"2026-11-02","status":"confirmed"}`)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"confirmed"`) {
		t.Fatalf("expected confirmed appointment, got %d %s", rec.Code, rec.Body.String())
	}
	if rec := serve(h, http.MethodDelete, "/appointments/a7", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	for _, id := range gw.ids {
		if id != "a7" {
			t.Fatalf("expected id a7 forwarded, got %v", gw.ids)
		}
	}
}

func TestAppointments_BackendErrors(t *testing.T) {
	gw := &fakeGateway{err: &httpclient.APIError{Status: http.StatusConflict, Message: "Slot already taken"}}
	rec := serve(newRouter(gw), http.MethodPost, "/appointments/", `{"pet":"p1","veterinarian":"v1","date":"2026-11-02"}`)
	if rec.Code != http.StatusConflict || !strings.Contains(rec.Body.String(), "Slot already taken") {
		t.Fatalf("expected relayed 409, got %d %s", rec.Code, rec.Body.String())
	}

	gw.err = &httpclient.NetworkError{Err: context.DeadlineExceeded}
	if rec := serve(newRouter(gw), http.MethodGet, "/appointments/", ""); rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}
