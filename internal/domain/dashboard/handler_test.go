package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mem "pet-wellness-web/internal/adapters/storage/memory"
	"pet-wellness-web/internal/domain/users"
	"pet-wellness-web/internal/middleware"
	"pet-wellness-web/internal/platform/httpclient"
	"pet-wellness-web/internal/session"
	"pet-wellness-web/internal/views"

	"github.com/go-chi/chi/v5"
)

type fakeGateway struct {
	d      Dashboard
	err    error
	tokens []string
}

func (g *fakeGateway) GetDashboard(_ context.Context, token string) (Dashboard, error) {
	g.tokens = append(g.tokens, token)
	return g.d, g.err
}

func newRouter(t *testing.T, gw Gateway, u *users.User) http.Handler {
	t.Helper()
	v, err := views.New(nil)
	if err != nil {
		t.Fatalf("views: %v", err)
	}

	sc, err := session.Open(context.Background(), mem.NewSessionStore(), "sid")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if u != nil {
		token := "tok"
		if err := sc.Set(context.Background(), session.Patch{Token: &token, User: u}); err != nil {
			t.Fatalf("set: %v", err)
		}
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithSession(req.Context(), sc)))
		})
	})
	RegisterRoutes(r, gw, v, nil)
	r.Route("/api", func(ar chi.Router) {
		ar.Use(middleware.RequireToken)
		RegisterAPIRoutes(ar, gw)
	})
	return r
}

func TestDashboardPage_RendersAggregate(t *testing.T) {
	gw := &fakeGateway{d: Dashboard{
		ActivityPercentage:  50,
		HealthData:          []HealthPoint{{Month: "Jan", Value: 10}, {Month: "Feb", Value: 20}},
		Appointments:        []AppointmentSummary{{ID: "a1", Name: "Milo", Type: "Checkup", Veterinarian: "Dr. Vega"}},
		ChatMessages:        []ChatPreview{},
		PendingAppointments: 3,
	}}
	h := newRouter(t, gw, &users.User{ID: "u1", Role: users.RoleVeterinarian, FirstName: "Ana"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Hello, Ana", "Dr. Vega", `stroke-dashoffset="141.3"`, "<strong>3</strong>"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body", want)
		}
	}
	if len(gw.tokens) != 1 || gw.tokens[0] != "tok" {
		t.Fatalf("expected session token forwarded, got %v", gw.tokens)
	}
}

func TestDashboardPage_FetchFailureShowsMessage(t *testing.T) {
	gw := &fakeGateway{err: &httpclient.NetworkError{Err: context.DeadlineExceeded}}
	h := newRouter(t, gw, &users.User{ID: "u1", Role: users.RolePetOwner, OnboardingStep: 2})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if !strings.Contains(rec.Body.String(), MsgLoadFailed) {
		t.Fatalf("expected load failure message, got %s", rec.Body.String())
	}
}

func TestPlaceholdersRenderDashboard(t *testing.T) {
	h := newRouter(t, &fakeGateway{}, &users.User{ID: "u1", Role: users.RolePetOwner, OnboardingStep: 2})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chat", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `href="/chat" class="active"`) {
		t.Fatalf("expected chat menu entry active")
	}
}

func TestDashboardPage_RequiresSession(t *testing.T) {
	h := newRouter(t, &fakeGateway{}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestDashboardAPI(t *testing.T) {
	gw := &fakeGateway{d: Dashboard{WellnessPercentage: 80, HealthData: []HealthPoint{}, Appointments: []AppointmentSummary{}, ChatMessages: []ChatPreview{}}}

	rec := httptest.NewRecorder()
	newRouter(t, gw, &users.User{ID: "u1", Role: users.RolePetOwner}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got Dashboard
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.WellnessPercentage != 80 {
		t.Fatalf("unexpected payload %+v", got)
	}

	// sin token => 401
	rec = httptest.NewRecorder()
	newRouter(t, gw, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestChart(t *testing.T) {
	w, pts := chart([]HealthPoint{{Value: 0}, {Value: 50}, {Value: 100}})
	if w != 80 {
		t.Fatalf("expected width 80, got %d", w)
	}
	if pts != "0,100.0 40,55.0 80,10.0" {
		t.Fatalf("unexpected points %q", pts)
	}
	if w, pts := chart(nil); w != 0 || pts != "" {
		t.Fatalf("expected empty chart")
	}
}
