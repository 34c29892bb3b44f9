package navigation

import (
	"net/http"

	"pet-wellness-web/internal/middleware"
	"pet-wellness-web/internal/platform/metrics"
	"pet-wellness-web/internal/session"
)

// Guard corre Decide antes del handler de la página.
// Redirect => 303 al destino; el guard de esa ruta vuelve a decidir.
// Sin sesión en el context se decide como rol ausente.
func Guard(route Route) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var st session.State
			if sc, ok := middleware.GetSession(r.Context()); ok {
				st = sc.Get()
			}

			a := Decide(route, StateOf(st))
			metrics.GuardDecisionsTotal.WithLabelValues(route.String(), a.Outcome()).Inc()

			if a.Redirect() {
				http.Redirect(w, r, a.Target.String(), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
