package onboarding

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"

	"pet-wellness-web/internal/domain/pets"
	"pet-wellness-web/internal/domain/users"
	"pet-wellness-web/internal/platform/validation"
)

const (
	maxUpload = 8 << 20 // body completo del form
	maxImage  = 5 << 20
)

type loginForm struct {
	Email string
}

type signupForm struct {
	FirstName string
	LastName  string
	Email     string
	Role      users.Role
	Roles     []users.Role
}

type petForm struct {
	Input        pets.Input
	Species      []pets.Species
	Genders      []pets.Gender
	Sizes        []pets.Size
	Health       []pets.Health
	Ages         []pets.Age
	Temperaments []pets.Temperament
}

func newPetForm(in pets.Input) petForm {
	return petForm{
		Input:        in.WithDefaults(),
		Species:      pets.SpeciesOptions,
		Genders:      pets.GenderOptions,
		Sizes:        pets.SizeOptions,
		Health:       pets.HealthOptions,
		Ages:         pets.AgeOptions,
		Temperaments: pets.TemperamentOptions,
	}
}

// parseForm acepta urlencoded y multipart (los formularios con imagen).
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxUpload)
	}
	return r.ParseForm()
}

func formValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.FormValue(name))
}

// imageDataURI convierte el archivo subido en un data URI.
// Sin archivo => "", nil. Solo se aceptan imágenes.
func imageDataURI(r *http.Request, field string) (string, error) {
	if r.MultipartForm == nil {
		return "", nil
	}
	f, _, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxImage+1))
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", nil
	}
	if len(raw) > maxImage {
		return "", fieldError(field, field+" must be at most 5MB")
	}

	mime := http.DetectContentType(raw)
	if !strings.HasPrefix(mime, "image/") {
		return "", fieldError(field, field+" must be an image")
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

func fieldError(field, msg string) error {
	return &validation.Error{Fields: map[string]string{field: msg}, Messages: []string{msg}}
}

func fieldsOf(err error) map[string]string {
	var ve *validation.Error
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
