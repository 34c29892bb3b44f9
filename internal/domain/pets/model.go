package pets

import "context"

// Species define las especies soportadas.
// @Enum Cat, Dog, Mixed
type Species string

const (
	SpeciesCat   Species = "Cat"
	SpeciesDog   Species = "Dog"
	SpeciesMixed Species = "Mixed"
)

// Gender de la mascota.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

// Health, Age y Temperament aceptan Unknown como default.
type Health string

const (
	HealthUnknown   Health = "Unknown"
	HealthExcellent Health = "Excellent"
	HealthGood      Health = "Good"
	HealthFair      Health = "Fair"
	HealthPoor      Health = "Poor"
)

type Age string

const (
	AgeUnknown Age = "Unknown"
	AgeYoung   Age = "Young"
	AgeAdult   Age = "Adult"
	AgeSenior  Age = "Senior"
)

type Temperament string

const (
	TemperamentUnknown    Temperament = "Unknown"
	TemperamentFriendly   Temperament = "Friendly"
	TemperamentShy        Temperament = "Shy"
	TemperamentEnergetic  Temperament = "Energetic"
	TemperamentCalm       Temperament = "Calm"
	TemperamentAggressive Temperament = "Aggressive"
)

// Opciones para los formularios (mismo orden que el enum).
var (
	SpeciesOptions     = []Species{SpeciesCat, SpeciesDog, SpeciesMixed}
	GenderOptions      = []Gender{GenderMale, GenderFemale}
	SizeOptions        = []Size{SizeSmall, SizeMedium, SizeLarge}
	HealthOptions      = []Health{HealthUnknown, HealthExcellent, HealthGood, HealthFair, HealthPoor}
	AgeOptions         = []Age{AgeUnknown, AgeYoung, AgeAdult, AgeSenior}
	TemperamentOptions = []Temperament{TemperamentUnknown, TemperamentFriendly, TemperamentShy, TemperamentEnergetic, TemperamentCalm, TemperamentAggressive}
)

// Pet representa la mascota registrada del pet_owner (0 o 1 en este cliente).
type Pet struct {
	ID    string `json:"id,omitempty"`
	Owner string `json:"owner,omitempty"`

	Name        string      `json:"name"`
	Species     Species     `json:"species,omitempty"`
	Breed       string      `json:"breed,omitempty"`
	Description string      `json:"description,omitempty"`
	Gender      Gender      `json:"gender,omitempty"`
	Size        Size        `json:"size,omitempty"`
	Health      Health      `json:"health,omitempty"`
	Age         Age         `json:"age,omitempty"`
	Temperament Temperament `json:"temperament,omitempty"`

	// Blob opaco (data URI); no se interpreta.
	Image string `json:"image,omitempty"`
}

// Input es el payload de alta/edición de mascota.
type Input struct {
	Name        string      `json:"name" validate:"required,max=100"`
	Species     Species     `json:"species,omitempty" validate:"omitempty,oneof=Cat Dog Mixed"`
	Breed       string      `json:"breed,omitempty" validate:"max=100"`
	Description string      `json:"description,omitempty" validate:"max=1000"`
	Gender      Gender      `json:"gender,omitempty" validate:"omitempty,oneof=Male Female"`
	Size        Size        `json:"size,omitempty" validate:"omitempty,oneof=Small Medium Large"`
	Health      Health      `json:"health" validate:"oneof=Unknown Excellent Good Fair Poor"`
	Age         Age         `json:"age" validate:"oneof=Unknown Young Adult Senior"`
	Temperament Temperament `json:"temperament" validate:"oneof=Unknown Friendly Shy Energetic Calm Aggressive"`
	Image       string      `json:"image,omitempty"`
}

// WithDefaults completa health/age/temperament con Unknown.
func (in Input) WithDefaults() Input {
	if in.Health == "" {
		in.Health = HealthUnknown
	}
	if in.Age == "" {
		in.Age = AgeUnknown
	}
	if in.Temperament == "" {
		in.Temperament = TemperamentUnknown
	}
	return in
}

type Gateway interface {
	CreatePet(ctx context.Context, token string, in Input) (Pet, error)
	ListPets(ctx context.Context, token string) ([]Pet, error)
	GetPet(ctx context.Context, token, id string) (Pet, error)
	UpdatePet(ctx context.Context, token, id string, in Input) (Pet, error)
	DeletePet(ctx context.Context, token, id string) error
}
