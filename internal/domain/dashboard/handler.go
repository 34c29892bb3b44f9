package dashboard

import (
	"fmt"
	"net/http"
	"strings"

	"pet-wellness-web/internal/domain/pets"
	"pet-wellness-web/internal/middleware"
	"pet-wellness-web/internal/navigation"
	"pet-wellness-web/internal/platform/logger"
	"pet-wellness-web/internal/platform/respond"
	"pet-wellness-web/internal/session"
	"pet-wellness-web/internal/views"

	"github.com/go-chi/chi/v5"
)

const MsgLoadFailed = "Failed to load dashboard data. Please try again later."

type menuItem struct {
	Path  string
	Label string
	Badge int
}

type gauge struct {
	Label   string
	Percent int
	Offset  float64
}

type board struct {
	Gauges       []gauge
	Health       []HealthPoint
	ChartWidth   int
	ChartPoints  string
	Appointments []AppointmentSummary
	Chats        []ChatPreview
}

type pageData struct {
	Menu  []menuItem
	Pet   *pets.Pet
	Board *board
}

// RegisterRoutes monta /dashboard y los placeholders del menú (hoy todos muestran el dashboard).
func RegisterRoutes(r chi.Router, gw Gateway, v *views.Renderer, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	routes := append([]navigation.Route{navigation.RouteDashboard}, navigation.Placeholders...)
	for _, route := range routes {
		r.With(navigation.Guard(route)).Get(route.String(), pageHandler(route, gw, v, log))
	}
}

// RegisterAPIRoutes monta GET /dashboard del proxy JSON (bajo /api).
func RegisterAPIRoutes(r chi.Router, gw Gateway) {
	r.Get("/dashboard", getDashboardHandler(gw))
}

func pageHandler(route navigation.Route, gw Gateway, v *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var st session.State
		if sc, ok := middleware.GetSession(r.Context()); ok {
			st = sc.Get()
		}

		data := pageData{Pet: st.Pet}
		page := views.Page{Title: "Dashboard", Active: route.String(), User: st.User}

		d, err := gw.GetDashboard(r.Context(), st.Token)
		if err != nil {
			log.Warn("dashboard fetch failed", map[string]any{"err": err})
			page.Error = MsgLoadFailed
			data.Menu = menu(0)
		} else {
			data.Board = newBoard(d)
			data.Menu = menu(d.PendingAppointments)
		}

		page.Data = data
		v.Render(w, http.StatusOK, views.PageDashboard, page)
	}
}

// getDashboardHandler godoc
// @Summary      Dashboard aggregate
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  Dashboard
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/dashboard [get]
func getDashboardHandler(gw Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := gw.GetDashboard(r.Context(), middleware.Token(r.Context()))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, d)
	}
}

func menu(pending int) []menuItem {
	return []menuItem{
		{Path: navigation.RouteDashboard.String(), Label: "Dashboard"},
		{Path: navigation.RoutePetProfile.String(), Label: "Pet profile"},
		{Path: navigation.RouteHealthMonitoring.String(), Label: "Health monitoring"},
		{Path: navigation.RouteAppointments.String(), Label: "Appointments", Badge: pending},
		{Path: navigation.RouteChat.String(), Label: "Chat"},
		{Path: navigation.RouteSettings.String(), Label: "Settings"},
		{Path: navigation.RouteDocumentation.String(), Label: "Documentation"},
	}
}

func newBoard(d Dashboard) *board {
	b := &board{
		Gauges: []gauge{
			{Label: "ACTIVITY", Percent: d.ActivityPercentage, Offset: Gauge(d.ActivityPercentage)},
			{Label: "SLEEP", Percent: d.SleepPercentage, Offset: Gauge(d.SleepPercentage)},
			{Label: "WELLNESS", Percent: d.WellnessPercentage, Offset: Gauge(d.WellnessPercentage)},
		},
		Health:       d.HealthData,
		Appointments: d.Appointments,
		Chats:        d.ChatMessages,
	}
	b.ChartWidth, b.ChartPoints = chart(d.HealthData)
	return b
}

const chartStep = 40

// chart arma los puntos del polyline (viewBox de alto 100, el máximo queda en y=10).
func chart(points []HealthPoint) (int, string) {
	if len(points) == 0 {
		return 0, ""
	}
	top := 0.0
	for _, p := range points {
		if p.Value > top {
			top = p.Value
		}
	}

	var sb strings.Builder
	for i, p := range points {
		y := 100.0
		if top > 0 {
			y = 100 - p.Value/top*90
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d,%.1f", i*chartStep, y)
	}

	width := (len(points) - 1) * chartStep
	if width == 0 {
		width = 1
	}
	return width, sb.String()
}
