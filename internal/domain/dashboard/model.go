package dashboard

import (
	"context"
	"encoding/json"
	"fmt"

	"pet-wellness-web/internal/platform/validation"
)

// HealthPoint es un punto de la serie mensual del chart de vitals.
type HealthPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

type AppointmentSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Date         string `json:"date"`
	Veterinarian string `json:"veterinar"` // nombre de campo del backend
}

type ChatPreview struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Time    string `json:"time"`
	Message string `json:"message"`
	Unread  int    `json:"unread" validate:"gte=0"`
}

// Dashboard es el agregado de GET /dashboard ya validado y con defaults aplicados.
type Dashboard struct {
	ActivityPercentage  int                  `json:"activityPercentage" validate:"gte=0,lte=100"`
	SleepPercentage     int                  `json:"sleepPercentage" validate:"gte=0,lte=100"`
	WellnessPercentage  int                  `json:"wellnessPercentage" validate:"gte=0,lte=100"`
	HealthData          []HealthPoint        `json:"healthData"`
	Appointments        []AppointmentSummary `json:"appointments"`
	ChatMessages        []ChatPreview        `json:"chatMessages" validate:"dive"`
	PendingAppointments int                  `json:"pendingAppointments" validate:"gte=0"`
}

// wire refleja el payload tal cual: todo opcional.
type wire struct {
	ActivityPercentage  *float64             `json:"activityPercentage"`
	SleepPercentage     *float64             `json:"sleepPercentage"`
	WellnessPercentage  *float64             `json:"wellnessPercentage"`
	HealthData          []HealthPoint        `json:"healthData"`
	Appointments        []AppointmentSummary `json:"appointments"`
	ChatMessages        []ChatPreview        `json:"chatMessages"`
	PendingAppointments *int                 `json:"pendingAppointments"`
}

// Parse decodifica el agregado aplicando defaults explícitos:
// números ausentes => 0, listas ausentes => vacías. Luego valida rangos.
func Parse(raw []byte) (Dashboard, error) {
	var w wire
	if err := json.Unmarshal(raw, &w); err != nil {
		return Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}

	d := Dashboard{
		ActivityPercentage:  percent(w.ActivityPercentage),
		SleepPercentage:     percent(w.SleepPercentage),
		WellnessPercentage:  percent(w.WellnessPercentage),
		HealthData:          w.HealthData,
		Appointments:        w.Appointments,
		ChatMessages:        w.ChatMessages,
		PendingAppointments: 0,
	}
	if w.PendingAppointments != nil {
		d.PendingAppointments = *w.PendingAppointments
	}
	if d.HealthData == nil {
		d.HealthData = []HealthPoint{}
	}
	if d.Appointments == nil {
		d.Appointments = []AppointmentSummary{}
	}
	if d.ChatMessages == nil {
		d.ChatMessages = []ChatPreview{}
	}

	if err := validation.Struct(d); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}

// Los porcentajes llegan como número JSON; se redondean al entero más cercano.
func percent(v *float64) int {
	if v == nil {
		return 0
	}
	if *v < 0 {
		return int(*v - 0.5)
	}
	return int(*v + 0.5)
}

// Gauge devuelve el dashoffset del anillo SVG (circunferencia 282.6) para un porcentaje.
func Gauge(pct int) float64 {
	const circumference = 282.6
	return circumference - circumference*float64(pct)/100
}

type Gateway interface {
	GetDashboard(ctx context.Context, token string) (Dashboard, error)
}
