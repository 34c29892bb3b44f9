package users

import "context"

// Role del usuario. El backend es la fuente de verdad; el cliente solo normaliza al registrar.
type Role string

const (
	RolePetOwner     Role = "pet_owner"
	RoleVeterinarian Role = "veterinarian"
)

func (r Role) Valid() bool {
	return r == RolePetOwner || r == RoleVeterinarian
}

// NormalizeRole: cualquier valor fuera del enum se trata como pet_owner.
func NormalizeRole(r Role) Role {
	if r.Valid() {
		return r
	}
	return RolePetOwner
}

// User tal como lo devuelve el backend (incluye token en login/registro/onboarding).
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role"`

	// 0 = perfil incompleto, 1 = falta mascota (pet_owner), >=2 onboarding completo.
	OnboardingStep int `json:"onboardingStep"`

	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Location     string `json:"location,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"` // data URI o URL

	Token string `json:"token,omitempty"`
}

type RegisterInput struct {
	FirstName string `json:"firstName,omitempty" validate:"max=100"`
	LastName  string `json:"lastName,omitempty" validate:"max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      Role   `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileInput se usa tanto en PUT /users/profile como en el paso 1 del onboarding.
type ProfileInput struct {
	FirstName    string `json:"firstName" validate:"required,max=100"`
	LastName     string `json:"lastName" validate:"required,max=100"`
	PhoneNumber  string `json:"phoneNumber,omitempty" validate:"max=30"`
	Location     string `json:"location,omitempty" validate:"max=200"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Gateway agrupa las llamadas al backend del recurso users.
type Gateway interface {
	Register(ctx context.Context, in RegisterInput) (User, error)
	Login(ctx context.Context, in LoginInput) (User, error)
	GetProfile(ctx context.Context, token string) (User, error)
	UpdateProfile(ctx context.Context, token string, in ProfileInput) (User, error)
	CompleteOnboardingStep1(ctx context.Context, token string, in ProfileInput) (User, error)
}
