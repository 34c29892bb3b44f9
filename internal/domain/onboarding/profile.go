package onboarding

import (
	"net/http"

	"pet-wellness-web/internal/domain/users"
	"pet-wellness-web/internal/middleware"
	"pet-wellness-web/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes monta /profile del proxy JSON (bajo /api con RequireToken).
// Vive acá y no en users porque PUT refresca el user de la sesión.
func RegisterAPIRoutes(r chi.Router, svc *Service) {
	r.Get("/profile", getProfileHandler(svc))
	r.Put("/profile", updateProfileHandler(svc))
}

// getProfileHandler godoc
// @Summary      Current user profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  users.User
// @Failure      401  {object}  map[string]string
// @Router       /api/profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.gw.GetProfile(r.Context(), middleware.Token(r.Context()))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, u)
	}
}

// updateProfileHandler godoc
// @Summary      Update profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      users.ProfileInput  true  "Profile"
// @Success      200   {object}  users.User
// @Failure      422   {object}  map[string]string
// @Router       /api/profile [put]
func updateProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := sessionOf(w, r)
		if !ok {
			return
		}
		var in users.ProfileInput
		if !respond.DecodeJSON(w, r, &in) {
			return
		}
		u, err := svc.UpdateProfile(r.Context(), sc, in)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, u)
	}
}
