package healthrecords

import "context"

// Record es una medición de salud de la mascota (alimenta los charts de vitals).
type Record struct {
	ID            string   `json:"id"`
	Pet           string   `json:"pet"`
	Date          string   `json:"date"`
	RecordType    string   `json:"recordType,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	HeartRate     *int     `json:"heartRate,omitempty"`
	ActivityLevel *int     `json:"activityLevel,omitempty"`
	SleepHours    *float64 `json:"sleepHours,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

type Input struct {
	Pet           string   `json:"pet" validate:"required"`
	Date          string   `json:"date,omitempty"`
	RecordType    string   `json:"recordType,omitempty" validate:"max=100"`
	Weight        *float64 `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Temperature   *float64 `json:"temperature,omitempty" validate:"omitempty,gte=0"`
	HeartRate     *int     `json:"heartRate,omitempty" validate:"omitempty,gte=0"`
	ActivityLevel *int     `json:"activityLevel,omitempty" validate:"omitempty,gte=0,lte=100"`
	SleepHours    *float64 `json:"sleepHours,omitempty" validate:"omitempty,gte=0,lte=24"`
	Notes         string   `json:"notes,omitempty" validate:"max=2000"`
}

// Stats es el agregado por mascota de GET /health-records/stats/:petId.
type Stats struct {
	TotalRecords         int     `json:"totalRecords"`
	AverageWeight        float64 `json:"averageWeight"`
	AverageTemperature   float64 `json:"averageTemperature"`
	AverageHeartRate     float64 `json:"averageHeartRate"`
	AverageActivityLevel float64 `json:"averageActivityLevel"`
	AverageSleepHours    float64 `json:"averageSleepHours"`
}

type Gateway interface {
	CreateHealthRecord(ctx context.Context, token string, in Input) (Record, error)
	ListHealthRecords(ctx context.Context, token, petID string) ([]Record, error)
	GetHealthRecord(ctx context.Context, token, id string) (Record, error)
	UpdateHealthRecord(ctx context.Context, token, id string, in Input) (Record, error)
	DeleteHealthRecord(ctx context.Context, token, id string) error
	HealthStats(ctx context.Context, token, petID string) (Stats, error)
}
