package navigation

// Route es una ruta del cliente (path del navegador).
type Route string

const (
	RouteRoot         Route = "/"
	RouteLogin        Route = "/login"
	RouteSignup       Route = "/signup"
	RoutePersonalInfo Route = "/personal-info"
	RouteAddPet       Route = "/add-pet"
	RouteDashboard    Route = "/dashboard"

	// Placeholders: hoy todos muestran el dashboard.
	RoutePetProfile       Route = "/pet-profile"
	RouteHealthMonitoring Route = "/health-monitoring"
	RouteAppointments     Route = "/appointments"
	RouteChat             Route = "/chat"
	RouteSettings         Route = "/settings"
	RouteDocumentation    Route = "/documentation"
)

// Placeholders en el orden del menú lateral.
var Placeholders = []Route{
	RoutePetProfile,
	RouteHealthMonitoring,
	RouteAppointments,
	RouteChat,
	RouteSettings,
	RouteDocumentation,
}

// Gated son las rutas que el guard decide (el resto se deja pasar).
var Gated = []Route{RouteLogin, RouteSignup, RoutePersonalInfo, RouteAddPet, RouteDashboard}

func (r Route) String() string { return string(r) }

func isPlaceholder(r Route) bool {
	for _, p := range Placeholders {
		if p == r {
			return true
		}
	}
	return false
}
