package pets

import (
	"net/http"

	"pet-wellness-web/internal/platform/respond"
	"pet-wellness-web/internal/platform/validation"
	"pet-wellness-web/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /pets del proxy JSON. Se espera bajo /api con RequireToken.
func RegisterRoutes(r chi.Router, gw Gateway, token auth.TokenFunc) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(gw, token))
		pr.Get("/", listPetsHandler(gw, token))
		pr.Get("/{petID}", getPetHandler(gw, token))
		pr.Put("/{petID}", updatePetHandler(gw, token))
		pr.Delete("/{petID}", deletePetHandler(gw, token))
	})
}

// createPetHandler godoc
// @Summary      Create pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Param        body  body      Input  true  "Pet"
// @Success      201   {object}  Pet
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/pets [post]
func createPetHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Input
		if !respond.DecodeJSON(w, r, &in) {
			return
		}
		in = in.WithDefaults()
		if err := validation.Struct(in); err != nil {
			respond.Error(w, err)
			return
		}

		p, err := gw.CreatePet(r.Context(), token(r.Context()), in)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, p)
	}
}

// listPetsHandler godoc
// @Summary      List my pets
// @Tags         pets
// @Produce      json
// @Success      200  {array}   Pet
// @Failure      401  {object}  map[string]string
// @Router       /api/pets [get]
func listPetsHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := gw.ListPets(r.Context(), token(r.Context()))
		if err != nil {
			respond.Error(w, err)
			return
		}
		if items == nil {
			items = []Pet{}
		}
		respond.JSON(w, http.StatusOK, items)
	}
}

// getPetHandler godoc
// @Summary      Get pet
// @Tags         pets
// @Produce      json
// @Param        petID  path      string  true  "Pet ID"
// @Success      200    {object}  Pet
// @Failure      404    {object}  map[string]string
// @Router       /api/pets/{petID} [get]
func getPetHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := gw.GetPet(r.Context(), token(r.Context()), chi.URLParam(r, "petID"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, p)
	}
}

// updatePetHandler godoc
// @Summary      Update pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Param        petID  path      string  true  "Pet ID"
// @Param        body   body      Input   true  "Pet"
// @Success      200    {object}  Pet
// @Failure      422    {object}  map[string]string
// @Router       /api/pets/{petID} [put]
func updatePetHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Input
		if !respond.DecodeJSON(w, r, &in) {
			return
		}
		in = in.WithDefaults()
		if err := validation.Struct(in); err != nil {
			respond.Error(w, err)
			return
		}

		p, err := gw.UpdatePet(r.Context(), token(r.Context()), chi.URLParam(r, "petID"), in)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, p)
	}
}

// deletePetHandler godoc
// @Summary      Delete pet
// @Tags         pets
// @Param        petID  path  string  true  "Pet ID"
// @Success      204
// @Router       /api/pets/{petID} [delete]
func deletePetHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := gw.DeletePet(r.Context(), token(r.Context()), chi.URLParam(r, "petID")); err != nil {
			respond.Error(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
