package navigation

import (
	"pet-wellness-web/internal/domain/users"
	"pet-wellness-web/internal/session"
)

// State es lo único que mira el guard: rol (vacío = sin sesión) y paso de onboarding.
type State struct {
	Role users.Role
	Step int
}

// StateOf deriva el State del guard desde la sesión.
// Roles desconocidos se tratan como pet_owner y pasos negativos como 0.
func StateOf(st session.State) State {
	if st.User == nil {
		return State{}
	}
	step := st.User.OnboardingStep
	if step < 0 {
		step = 0
	}
	return State{Role: users.NormalizeRole(st.User.Role), Step: step}
}

func (s State) Authenticated() bool { return s.Role != "" }

// Action: Allow o redirect a Target.
type Action struct {
	Allow  bool
	Target Route
}

func allow() Action             { return Action{Allow: true} }
func redirect(to Route) Action  { return Action{Target: to} }
func (a Action) Redirect() bool { return !a.Allow }
func (a Action) Outcome() string {
	if a.Allow {
		return "allow"
	}
	return a.Target.String()
}

// Home es el destino de onboarding de un usuario autenticado:
//   - veterinarian: paso 0 => /personal-info, si no /dashboard
//   - pet_owner: 0 => /personal-info, 1 => /add-pet, >=2 => /dashboard
func Home(s State) Route {
	switch {
	case !s.Authenticated():
		return RouteLogin
	case s.Role == users.RoleVeterinarian:
		if s.Step < 1 {
			return RoutePersonalInfo
		}
		return RouteDashboard
	default:
		switch {
		case s.Step <= 0:
			return RoutePersonalInfo
		case s.Step == 1:
			return RouteAddPet
		default:
			return RouteDashboard
		}
	}
}

// Decide es la política de navegación: pura, sin IO.
// El rol se evalúa antes que el paso; sin sesión todo lo gated va a /login.
// Es idempotente: Decide(a.Target, s) siempre es Allow.
func Decide(route Route, s State) Action {
	switch {
	case route == RouteRoot:
		return redirect(RouteLogin)

	case route == RouteLogin || route == RouteSignup:
		if !s.Authenticated() {
			return allow()
		}
		return redirect(Home(s))

	case route == RoutePersonalInfo:
		if !s.Authenticated() {
			return redirect(RouteLogin)
		}
		if home := Home(s); home != RoutePersonalInfo {
			return redirect(home)
		}
		return allow()

	case route == RouteAddPet:
		if !s.Authenticated() {
			return redirect(RouteLogin)
		}
		// Los veterinarios nunca registran mascota.
		if s.Role == users.RoleVeterinarian {
			return redirect(RouteDashboard)
		}
		if home := Home(s); home != RouteAddPet {
			return redirect(home)
		}
		return allow()

	case route == RouteDashboard || isPlaceholder(route):
		// El dashboard no valida onboarding, solo exige sesión.
		if !s.Authenticated() {
			return redirect(RouteLogin)
		}
		return allow()
	}

	return allow()
}
