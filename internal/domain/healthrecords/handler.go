package healthrecords

import (
	"net/http"

	"pet-wellness-web/internal/platform/respond"
	"pet-wellness-web/internal/platform/validation"
	"pet-wellness-web/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, gw Gateway, token auth.TokenFunc) {
	r.Route("/health-records", func(hr chi.Router) {
		hr.Post("/", createHandler(gw, token))
		hr.Get("/pet/{petID}", listByPetHandler(gw, token))
		hr.Get("/stats/{petID}", statsHandler(gw, token))
		hr.Get("/{recordID}", getHandler(gw, token))
		hr.Put("/{recordID}", updateHandler(gw, token))
		hr.Delete("/{recordID}", deleteHandler(gw, token))
	})
}

// createHandler godoc
// @Summary      Add health record
// @Tags         health-records
// @Accept       json
// @Produce      json
// @Param        body  body      Input  true  "Health record"
// @Success      201   {object}  Record
// @Failure      422   {object}  map[string]string
// @Router       /api/health-records [post]
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
		rec, err := gw.CreateHealthRecord(r.Context(), token(r.Context()), in)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, rec)
	}
}

// listByPetHandler godoc
// @Summary      Health records of a pet
// @Tags         health-records
// @Produce      json
// @Param        petID  path     string  true  "Pet ID"
// @Success      200    {array}  Record
// @Router       /api/health-records/pet/{petID} [get]
func listByPetHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := gw.ListHealthRecords(r.Context(), token(r.Context()), chi.URLParam(r, "petID"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		if items == nil {
			items = []Record{}
		}
		respond.JSON(w, http.StatusOK, items)
	}
}

// statsHandler godoc
// @Summary      Health stats of a pet
// @Tags         health-records
// @Produce      json
// @Param        petID  path      string  true  "Pet ID"
// @Success      200    {object}  Stats
// @Router       /api/health-records/stats/{petID} [get]
func statsHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := gw.HealthStats(r.Context(), token(r.Context()), chi.URLParam(r, "petID"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, st)
	}
}

// getHandler godoc
// @Summary      Get health record
// @Tags         health-records
// @Produce      json
// @Param        recordID  path      string  true  "Record ID"
// @Success      200       {object}  Record
// @Router       /api/health-records/{recordID} [get]
func getHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := gw.GetHealthRecord(r.Context(), token(r.Context()), chi.URLParam(r, "recordID"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, rec)
	}
}

// updateHandler godoc
// @Summary      Update health record
// @Tags         health-records
// @Accept       json
// @Produce      json
// @Param        recordID  path      string  true  "Record ID"
// @Param        body      body      Input   true  "Health record"
// @Success      200       {object}  Record
// @Router       /api/health-records/{recordID} [put]
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
		rec, err := gw.UpdateHealthRecord(r.Context(), token(r.Context()), chi.URLParam(r, "recordID"), in)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, rec)
	}
}

// deleteHandler godoc
// @Summary      Delete health record
// @Tags         health-records
// @Param        recordID  path  string  true  "Record ID"
// @Success      204
// @Router       /api/health-records/{recordID} [delete]
func deleteHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := gw.DeleteHealthRecord(r.Context(), token(r.Context()), chi.URLParam(r, "recordID")); err != nil {
			respond.Error(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
