package onboarding

import (
	"net/http"

	"pet-wellness-web/internal/domain/pets"
	"pet-wellness-web/internal/domain/users"
	"pet-wellness-web/internal/middleware"
	"pet-wellness-web/internal/navigation"
	"pet-wellness-web/internal/platform/respond"
	"pet-wellness-web/internal/session"
	"pet-wellness-web/internal/views"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las páginas de auth/onboarding, cada una detrás de su guard.
// Los forms postean a la misma ruta; si sale bien se redirige (303) y el guard
// de la ruta destino vuelve a decidir.
func RegisterRoutes(r chi.Router, svc *Service, v *views.Renderer) {
	page := func(route navigation.Route, get, post http.HandlerFunc) {
		r.Group(func(g chi.Router) {
			g.Use(navigation.Guard(route))
			g.Get(route.String(), get)
			g.Post(route.String(), post)
		})
	}

	page(navigation.RouteLogin, loginPageHandler(v), loginHandler(svc, v))
	page(navigation.RouteSignup, signupPageHandler(v), signupHandler(svc, v))
	page(navigation.RoutePersonalInfo, personalInfoPageHandler(v), personalInfoHandler(svc, v))
	page(navigation.RouteAddPet, addPetPageHandler(v), addPetHandler(svc, v))

	r.Post("/logout", logoutHandler(svc))
}

func loginPageHandler(v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v.Render(w, http.StatusOK, views.PageLogin, views.Page{Title: "Log in", Data: loginForm{}})
	}
}

func loginHandler(svc *Service, v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := sessionOf(w, r)
		if !ok {
			return
		}
		form := loginForm{}
		if err := parseForm(w, r); err != nil {
			v.Render(w, http.StatusBadRequest, views.PageLogin, views.Page{Title: "Log in", Error: "invalid form", Data: form})
			return
		}
		form.Email = formValue(r, "email")

		if _, err := svc.Login(r.Context(), sc, form.Email, r.FormValue("password")); err != nil {
			v.Render(w, respond.StatusOf(err), views.PageLogin, views.Page{
				Title:  "Log in",
				Error:  sc.Error,
				Fields: fieldsOf(err),
				Data:   form,
			})
			return
		}
		redirectHome(w, r, sc)
	}
}

func signupPageHandler(v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v.Render(w, http.StatusOK, views.PageSignup, views.Page{
			Title: "Sign up",
			Data:  signupForm{Role: users.RolePetOwner, Roles: roles},
		})
	}
}

var roles = []users.Role{users.RolePetOwner, users.RoleVeterinarian}

func signupHandler(svc *Service, v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := sessionOf(w, r)
		if !ok {
			return
		}
		form := signupForm{Roles: roles}
		if err := parseForm(w, r); err != nil {
			v.Render(w, http.StatusBadRequest, views.PageSignup, views.Page{Title: "Sign up", Error: "invalid form", Data: form})
			return
		}
		form.FirstName = formValue(r, "firstName")
		form.LastName = formValue(r, "lastName")
		form.Email = formValue(r, "email")
		form.Role = users.Role(formValue(r, "role"))

		_, err := svc.Register(r.Context(), sc, users.RegisterInput{
			FirstName: form.FirstName,
			LastName:  form.LastName,
			Email:     form.Email,
			Password:  r.FormValue("password"),
			Role:      form.Role,
		})
		if err != nil {
			form.Role = users.NormalizeRole(form.Role)
			v.Render(w, respond.StatusOf(err), views.PageSignup, views.Page{
				Title:  "Sign up",
				Error:  sc.Error,
				Fields: fieldsOf(err),
				Data:   form,
			})
			return
		}
		redirectHome(w, r, sc)
	}
}

func personalInfoPageHandler(v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := currentState(r)
		v.Render(w, http.StatusOK, views.PagePersonalInfo, views.Page{
			Title: "Personal information",
			User:  st.User,
			Data:  profileFrom(st.User),
		})
	}
}

func personalInfoHandler(svc *Service, v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := sessionOf(w, r)
		if !ok {
			return
		}
		st := sc.Get()
		in := profileFrom(st.User)

		render := func(status int, msg string, fields map[string]string) {
			v.Render(w, status, views.PagePersonalInfo, views.Page{
				Title:  "Personal information",
				User:   st.User,
				Error:  msg,
				Fields: fields,
				Data:   in,
			})
		}

		if err := parseForm(w, r); err != nil {
			render(http.StatusBadRequest, "invalid form", nil)
			return
		}
		in.FirstName = formValue(r, "firstName")
		in.LastName = formValue(r, "lastName")
		in.PhoneNumber = formValue(r, "phoneNumber")
		in.Location = formValue(r, "location")

		img, err := imageDataURI(r, "profileImage")
		if err != nil {
			render(respond.StatusOf(err), err.Error(), fieldsOf(err))
			return
		}
		if img != "" {
			in.ProfileImage = img
		}

		u, err := svc.CompleteOnboardingStep1(r.Context(), sc, in)
		if err != nil {
			render(respond.StatusOf(err), sc.Error, fieldsOf(err))
			return
		}

		// vet termina acá; pet_owner sigue con la mascota.
		to := navigation.RouteAddPet
		if users.NormalizeRole(u.Role) == users.RoleVeterinarian {
			to = navigation.RouteDashboard
		}
		http.Redirect(w, r, to.String(), http.StatusSeeOther)
	}
}

func addPetPageHandler(v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v.Render(w, http.StatusOK, views.PageAddPet, views.Page{
			Title: "Add pet",
			User:  currentState(r).User,
			Data:  newPetForm(pets.Input{}),
		})
	}
}

func addPetHandler(svc *Service, v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := sessionOf(w, r)
		if !ok {
			return
		}
		var in pets.Input

		render := func(status int, msg string, fields map[string]string) {
			v.Render(w, status, views.PageAddPet, views.Page{
				Title:  "Add pet",
				User:   sc.Get().User,
				Error:  msg,
				Fields: fields,
				Data:   newPetForm(in),
			})
		}

		if err := parseForm(w, r); err != nil {
			render(http.StatusBadRequest, "invalid form", nil)
			return
		}
		in = pets.Input{
			Name:        formValue(r, "name"),
			Species:     pets.Species(formValue(r, "species")),
			Breed:       formValue(r, "breed"),
			Description: formValue(r, "description"),
			Gender:      pets.Gender(formValue(r, "gender")),
			Size:        pets.Size(formValue(r, "size")),
			Health:      pets.Health(formValue(r, "health")),
			Age:         pets.Age(formValue(r, "age")),
			Temperament: pets.Temperament(formValue(r, "temperament")),
		}

		img, err := imageDataURI(r, "image")
		if err != nil {
			render(respond.StatusOf(err), err.Error(), fieldsOf(err))
			return
		}
		in.Image = img

		if _, err := svc.AddPet(r.Context(), sc, in); err != nil {
			render(respond.StatusOf(err), sc.Error, fieldsOf(err))
			return
		}
		http.Redirect(w, r, navigation.RouteDashboard.String(), http.StatusSeeOther)
	}
}

func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sc, ok := middleware.GetSession(r.Context()); ok {
			svc.Logout(r.Context(), sc)
		}
		http.Redirect(w, r, navigation.RouteLogin.String(), http.StatusSeeOther)
	}
}

func sessionOf(w http.ResponseWriter, r *http.Request) (*session.Context, bool) {
	sc, ok := middleware.GetSession(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return nil, false
	}
	return sc, true
}

func currentState(r *http.Request) session.State {
	if sc, ok := middleware.GetSession(r.Context()); ok {
		return sc.Get()
	}
	return session.State{}
}

// redirectHome manda al destino de onboarding del usuario recién autenticado.
func redirectHome(w http.ResponseWriter, r *http.Request, sc *session.Context) {
	to := navigation.Home(navigation.StateOf(sc.Get()))
	http.Redirect(w, r, to.String(), http.StatusSeeOther)
}

// profileFrom prellena el formulario con lo que ya hay en sesión.
func profileFrom(u *users.User) users.ProfileInput {
	if u == nil {
		return users.ProfileInput{}
	}
	return users.ProfileInput{
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PhoneNumber:  u.PhoneNumber,
		Location:     u.Location,
		ProfileImage: u.ProfileImage,
	}
}
