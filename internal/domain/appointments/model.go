package appointments

import "context"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Appointment struct {
	ID           string `json:"id"`
	Pet          string `json:"pet"`
	Owner        string `json:"owner,omitempty"`
	Veterinarian string `json:"veterinarian"`
	Date         string `json:"date"` // ISO-8601, tal cual lo manda el backend
	Type         string `json:"type,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Status       Status `json:"status,omitempty"`
}

type Input struct {
	Pet          string `json:"pet" validate:"required"`
	Veterinarian string `json:"veterinarian" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Type         string `json:"type,omitempty" validate:"max=100"`
	Reason       string `json:"reason,omitempty" validate:"max=500"`
	Notes        string `json:"notes,omitempty" validate:"max=2000"`
	Status       Status `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

type Gateway interface {
	CreateAppointment(ctx context.Context, token string, in Input) (Appointment, error)
	ListAppointments(ctx context.Context, token string) ([]Appointment, error)
	GetAppointment(ctx context.Context, token, id string) (Appointment, error)
	UpdateAppointment(ctx context.Context, token, id string, in Input) (Appointment, error)
	DeleteAppointment(ctx context.Context, token, id string) error
}
