package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-wellness-web/internal/domain/appointments"
	"pet-wellness-web/internal/domain/dashboard"
	"pet-wellness-web/internal/domain/healthrecords"
	"pet-wellness-web/internal/domain/messages"
	"pet-wellness-web/internal/domain/pets"
	"pet-wellness-web/internal/domain/users"
	"pet-wellness-web/internal/platform/httpclient"
)

var (
	ErrNotConfigured  = errors.New("backend client not configured")
	ErrInvalidPayload = errors.New("backend returned invalid payload")
	ErrMissingID      = errors.New("id required")
)

// Config del cliente del backend REST.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client implementa los gateways de todos los recursos del backend.
// Pass-through: sin retries ni cache; los errores de httpclient suben sin tocar.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// NewWithHTTP permite inyectar el httpclient (tests).
func NewWithHTTP(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	if c == nil || c.http == nil {
		return ErrNotConfigured
	}
	return c.http.DoJSON(ctx, method, path, httpclient.Bearer(token), in, out)
}

// pathID arma /recurso/:id escapando el id.
func pathID(base, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrMissingID
	}
	return base + "/" + url.PathEscape(id), nil
}

// ---------- users ----------

func (c *Client) Register(ctx context.Context, in users.RegisterInput) (users.User, error) {
	var out users.User
	err := c.do(ctx, http.MethodPost, "/users", "", in, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, in users.LoginInput) (users.User, error) {
	var out users.User
	err := c.do(ctx, http.MethodPost, "/users/login", "", in, &out)
	return out, err
}

func (c *Client) GetProfile(ctx context.Context, token string) (users.User, error) {
	var out users.User
	err := c.do(ctx, http.MethodGet, "/users/profile", token, nil, &out)
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, token string, in users.ProfileInput) (users.User, error) {
	var out users.User
	err := c.do(ctx, http.MethodPut, "/users/profile", token, in, &out)
	return out, err
}

func (c *Client) CompleteOnboardingStep1(ctx context.Context, token string, in users.ProfileInput) (users.User, error) {
	var out users.User
	err := c.do(ctx, http.MethodPut, "/users/onboarding/step1", token, in, &out)
	return out, err
}

// ---------- pets ----------

func (c *Client) CreatePet(ctx context.Context, token string, in pets.Input) (pets.Pet, error) {
	var out pets.Pet
	err := c.do(ctx, http.MethodPost, "/pets", token, in, &out)
	return out, err
}

func (c *Client) ListPets(ctx context.Context, token string) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	err := c.do(ctx, http.MethodGet, "/pets", token, nil, &out)
	return out, err
}

func (c *Client) GetPet(ctx context.Context, token, id string) (pets.Pet, error) {
	p, err := pathID("/pets", id)
	if err != nil {
		return pets.Pet{}, err
	}
	var out pets.Pet
	err = c.do(ctx, http.MethodGet, p, token, nil, &out)
	return out, err
}

func (c *Client) UpdatePet(ctx context.Context, token, id string, in pets.Input) (pets.Pet, error) {
	p, err := pathID("/pets", id)
	if err != nil {
		return pets.Pet{}, err
	}
	var out pets.Pet
	err = c.do(ctx, http.MethodPut, p, token, in, &out)
	return out, err
}

func (c *Client) DeletePet(ctx context.Context, token, id string) error {
	p, err := pathID("/pets", id)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, p, token, nil, nil)
}

// ---------- appointments ----------

func (c *Client) CreateAppointment(ctx context.Context, token string, in appointments.Input) (appointments.Appointment, error) {
	var out appointments.Appointment
	err := c.do(ctx, http.MethodPost, "/appointments", token, in, &out)
	return out, err
}

func (c *Client) ListAppointments(ctx context.Context, token string) ([]appointments.Appointment, error) {
	out := make([]appointments.Appointment, 0)
	err := c.do(ctx, http.MethodGet, "/appointments", token, nil, &out)
	return out, err
}

func (c *Client) GetAppointment(ctx context.Context, token, id string) (appointments.Appointment, error) {
	p, err := pathID("/appointments", id)
	if err != nil {
		return appointments.Appointment{}, err
	}
	var out appointments.Appointment
	err = c.do(ctx, http.MethodGet, p, token, nil, &out)
	return out, err
}

func (c *Client) UpdateAppointment(ctx context.Context, token, id string, in appointments.Input) (appointments.Appointment, error) {
	p, err := pathID("/appointments", id)
	if err != nil {
		return appointments.Appointment{}, err
	}
	var out appointments.Appointment
	err = c.do(ctx, http.MethodPut, p, token, in, &out)
	return out, err
}

func (c *Client) DeleteAppointment(ctx context.Context, token, id string) error {
	p, err := pathID("/appointments", id)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, p, token, nil, nil)
}

// ---------- health records ----------

func (c *Client) CreateHealthRecord(ctx context.Context, token string, in healthrecords.Input) (healthrecords.Record, error) {
	var out healthrecords.Record
	err := c.do(ctx, http.MethodPost, "/health-records", token, in, &out)
	return out, err
}

func (c *Client) ListHealthRecords(ctx context.Context, token, petID string) ([]healthrecords.Record, error) {
	p, err := pathID("/health-records/pet", petID)
	if err != nil {
		return nil, err
	}
	out := make([]healthrecords.Record, 0)
	err = c.do(ctx, http.MethodGet, p, token, nil, &out)
	return out, err
}

func (c *Client) GetHealthRecord(ctx context.Context, token, id string) (healthrecords.Record, error) {
	p, err := pathID("/health-records", id)
	if err != nil {
		return healthrecords.Record{}, err
	}
	var out healthrecords.Record
	err = c.do(ctx, http.MethodGet, p, token, nil, &out)
	return out, err
}

func (c *Client) UpdateHealthRecord(ctx context.Context, token, id string, in healthrecords.Input) (healthrecords.Record, error) {
	p, err := pathID("/health-records", id)
	if err != nil {
		return healthrecords.Record{}, err
	}
	var out healthrecords.Record
	err = c.do(ctx, http.MethodPut, p, token, in, &out)
	return out, err
}

func (c *Client) DeleteHealthRecord(ctx context.Context, token, id string) error {
	p, err := pathID("/health-records", id)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, p, token, nil, nil)
}

func (c *Client) HealthStats(ctx context.Context, token, petID string) (healthrecords.Stats, error) {
	p, err := pathID("/health-records/stats", petID)
	if err != nil {
		return healthrecords.Stats{}, err
	}
	var out healthrecords.Stats
	err = c.do(ctx, http.MethodGet, p, token, nil, &out)
	return out, err
}

// ---------- messages ----------

func (c *Client) SendMessage(ctx context.Context, token string, in messages.SendInput) (messages.Message, error) {
	var out messages.Message
	err := c.do(ctx, http.MethodPost, "/messages", token, in, &out)
	return out, err
}

func (c *Client) ListMessages(ctx context.Context, token, withUser string) ([]messages.Message, error) {
	withUser = strings.TrimSpace(withUser)
	if withUser == "" {
		return nil, ErrMissingID
	}
	q := url.Values{}
	q.Set("with", withUser)

	out := make([]messages.Message, 0)
	err := c.do(ctx, http.MethodGet, "/messages?"+q.Encode(), token, nil, &out)
	return out, err
}

func (c *Client) ListConversations(ctx context.Context, token string) ([]messages.Conversation, error) {
	out := make([]messages.Conversation, 0)
	err := c.do(ctx, http.MethodGet, "/messages/conversations", token, nil, &out)
	return out, err
}

func (c *Client) MarkMessagesRead(ctx context.Context, token, sender string) error {
	sender = strings.TrimSpace(sender)
	if sender == "" {
		return ErrMissingID
	}
	return c.do(ctx, http.MethodPut, "/messages/read", token, messages.MarkReadInput{Sender: sender}, nil)
}

// ---------- dashboard ----------

// GetDashboard valida el agregado en el borde (defaults + rangos) antes de devolverlo.
func (c *Client) GetDashboard(ctx context.Context, token string) (dashboard.Dashboard, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/dashboard", token, nil, &raw); err != nil {
		return dashboard.Dashboard{}, err
	}
	if len(raw) == 0 {
		raw = json.RawMessage(`{}`)
	}
	d, err := dashboard.Parse(raw)
	if err != nil {
		return dashboard.Dashboard{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return d, nil
}

// Chequeo en compile-time de que el cliente cubre todos los gateways.
var (
	_ users.Gateway         = (*Client)(nil)
	_ pets.Gateway          = (*Client)(nil)
	_ appointments.Gateway  = (*Client)(nil)
	_ healthrecords.Gateway = (*Client)(nil)
	_ messages.Gateway      = (*Client)(nil)
	_ dashboard.Gateway     = (*Client)(nil)
)
