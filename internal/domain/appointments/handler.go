package appointments

import (
	"net/http"

	"pet-wellness-web/internal/platform/respond"
	"pet-wellness-web/internal/platform/validation"
	"pet-wellness-web/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, gw Gateway, token auth.TokenFunc) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", createHandler(gw, token))
		ar.Get("/", listHandler(gw, token))
		ar.Get("/{appointmentID}", getHandler(gw, token))
		ar.Put("/{appointmentID}", updateHandler(gw, token))
		ar.Delete("/{appointmentID}", deleteHandler(gw, token))
	})
}

// createHandler godoc
// @Summary      Book appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      Input  true  "Appointment"
// @Success      201   {object}  Appointment
// @Failure      422   {object}  map[string]string
// @Router       /api/appointments [post]
func createHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Input
		if !respond.DecodeJSON(w, r, &in) {
			return
		}
		if err := validation.Struct(in); err != nil {
			respond.Error(w, err)
			return
		}
		a, err := gw.CreateAppointment(r.Context(), token(r.Context()), in)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, a)
	}
}

// listHandler godoc
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Success      200  {array}  Appointment
// @Router       /api/appointments [get]
func listHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := gw.ListAppointments(r.Context(), token(r.Context()))
		if err != nil {
			respond.Error(w, err)
			return
		}
		if items == nil {
			items = []Appointment{}
		}
		respond.JSON(w, http.StatusOK, items)
	}
}

// getHandler godoc
// @Summary      Get appointment
// @Tags         appointments
// @Produce      json
// @Param        appointmentID  path      string  true  "Appointment ID"
// @Success      200            {object}  Appointment
// @Router       /api/appointments/{appointmentID} [get]
func getHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := gw.GetAppointment(r.Context(), token(r.Context()), chi.URLParam(r, "appointmentID"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, a)
	}
}

// updateHandler godoc
// @Summary      Update appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        appointmentID  path      string  true  "Appointment ID"
// @Param        body           body      Input   true  "Appointment"
// @Success      200            {object}  Appointment
// @Router       /api/appointments/{appointmentID} [put]
func updateHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Input
		if !respond.DecodeJSON(w, r, &in) {
			return
		}
		if err := validation.Struct(in); err != nil {
			respond.Error(w, err)
			return
		}
		a, err := gw.UpdateAppointment(r.Context(), token(r.Context()), chi.URLParam(r, "appointmentID"), in)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, a)
	}
}

// deleteHandler godoc
// @Summary      Cancel appointment
// @Tags         appointments
// @Param        appointmentID  path  string  true  "Appointment ID"
// @Success      204
// @Router       /api/appointments/{appointmentID} [delete]
func deleteHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := gw.DeleteAppointment(r.Context(), token(r.Context()), chi.URLParam(r, "appointmentID")); err != nil {
			respond.Error(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
