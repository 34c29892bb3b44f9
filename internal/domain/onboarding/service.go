package onboarding

import (
	"context"
	"errors"

	"pet-wellness-web/internal/domain/pets"
	"pet-wellness-web/internal/domain/users"
	"pet-wellness-web/internal/platform/httpclient"
	"pet-wellness-web/internal/platform/logger"
	"pet-wellness-web/internal/platform/metrics"
	"pet-wellness-web/internal/platform/validation"
	"pet-wellness-web/internal/session"
)

// Mensajes cuando el backend no manda {"message": ...}.
const (
	MsgRegisterFailed   = "Registration failed"
	MsgLoginFailed      = "Login failed"
	MsgOnboardingFailed = "Failed to complete onboarding"
	MsgAddPetFailed     = "Failed to add pet"
	MsgProfileFailed    = "Failed to update profile"
)

var ErrNoSession = errors.New("onboarding: no session")

// Gateway es el subconjunto del cliente REST que usa el controller.
type Gateway interface {
	Register(ctx context.Context, in users.RegisterInput) (users.User, error)
	Login(ctx context.Context, in users.LoginInput) (users.User, error)
	GetProfile(ctx context.Context, token string) (users.User, error)
	UpdateProfile(ctx context.Context, token string, in users.ProfileInput) (users.User, error)
	CompleteOnboardingStep1(ctx context.Context, token string, in users.ProfileInput) (users.User, error)
	CreatePet(ctx context.Context, token string, in pets.Input) (pets.Pet, error)
}

type Service struct {
	gw    Gateway
	log   logger.Logger
	locks *keyedMutex
}

func NewService(gw Gateway, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{gw: gw, log: log, locks: newKeyedMutex()}
}

// Register normaliza el rol antes de llamar al backend y guarda token + user.
func (s *Service) Register(ctx context.Context, sc *session.Context, in users.RegisterInput) (users.User, error) {
	in.Role = users.NormalizeRole(in.Role)

	var out users.User
	err := s.run(ctx, sc, "register", MsgRegisterFailed, func(ctx context.Context) error {
		if err := validation.Struct(in); err != nil {
			return err
		}
		u, err := s.gw.Register(ctx, in)
		if err != nil {
			return err
		}
		out = u
		return s.storeUser(ctx, sc, u)
	})
	return out, err
}

func (s *Service) Login(ctx context.Context, sc *session.Context, email, password string) (users.User, error) {
	in := users.LoginInput{Email: email, Password: password}

	var out users.User
	err := s.run(ctx, sc, "login", MsgLoginFailed, func(ctx context.Context) error {
		if err := validation.Struct(in); err != nil {
			return err
		}
		u, err := s.gw.Login(ctx, in)
		if err != nil {
			return err
		}
		out = u
		return s.storeUser(ctx, sc, u)
	})
	return out, err
}

// Logout borra token/user/pet. Nunca falla hacia el caller: errores del store solo se loguean.
func (s *Service) Logout(ctx context.Context, sc *session.Context) {
	if sc == nil {
		return
	}
	unlock := s.locks.Lock(sc.ID())
	defer unlock()

	sc.Error = ""
	if err := sc.Clear(context.WithoutCancel(ctx)); err != nil {
		s.log.Warn("logout: session clear failed", map[string]any{"session_id": sc.ID(), "err": err})
	}
	metrics.ControllerOpsTotal.WithLabelValues("logout", "ok").Inc()
}

// CompleteOnboardingStep1 guarda el user devuelto (con onboardingStep ya avanzado por el backend).
func (s *Service) CompleteOnboardingStep1(ctx context.Context, sc *session.Context, in users.ProfileInput) (users.User, error) {
	var out users.User
	err := s.run(ctx, sc, "onboarding_step1", MsgOnboardingFailed, func(ctx context.Context) error {
		if err := validation.Struct(in); err != nil {
			return err
		}
		u, err := s.gw.CompleteOnboardingStep1(ctx, sc.Get().Token, in)
		if err != nil {
			return err
		}
		out = u
		return s.storeUser(ctx, sc, u)
	})
	return out, err
}

// UpdateProfile edita el perfil fuera del onboarding y refresca user (+ token) en sesión.
func (s *Service) UpdateProfile(ctx context.Context, sc *session.Context, in users.ProfileInput) (users.User, error) {
	var out users.User
	err := s.run(ctx, sc, "update_profile", MsgProfileFailed, func(ctx context.Context) error {
		if err := validation.Struct(in); err != nil {
			return err
		}
		u, err := s.gw.UpdateProfile(ctx, sc.Get().Token, in)
		if err != nil {
			return err
		}
		out = u
		return s.storeUser(ctx, sc, u)
	})
	return out, err
}

// AddPet crea la mascota y adelanta localmente el onboardingStep del user a 2.
// No se vuelve a pedir el perfil: el paso queda como lo asume el cliente.
func (s *Service) AddPet(ctx context.Context, sc *session.Context, in pets.Input) (pets.Pet, error) {
	in = in.WithDefaults()

	var out pets.Pet
	err := s.run(ctx, sc, "add_pet", MsgAddPetFailed, func(ctx context.Context) error {
		if err := validation.Struct(in); err != nil {
			return err
		}
		st := sc.Get()
		p, err := s.gw.CreatePet(ctx, st.Token, in)
		if err != nil {
			return err
		}
		out = p

		patch := session.Patch{Pet: &p}
		if st.User != nil {
			u := *st.User
			u.OnboardingStep = 2
			patch.User = &u
		}
		return sc.Set(context.WithoutCancel(ctx), patch)
	})
	return out, err
}

// run envuelve una operación: lock por sesión, recarga del estado, Loading/Error, métricas y log.
func (s *Service) run(ctx context.Context, sc *session.Context, op, fallback string, fn func(context.Context) error) error {
	if sc == nil {
		return ErrNoSession
	}
	unlock := s.locks.Lock(sc.ID())
	defer unlock()

	sc.Loading = true
	sc.Error = ""
	defer func() { sc.Loading = false }()

	// Con el lock tomado el snapshot de Open puede estar viejo (otra pestaña, doble submit).
	err := sc.Reload(ctx)
	if err == nil {
		err = fn(ctx)
	}
	if err == nil {
		metrics.ControllerOpsTotal.WithLabelValues(op, "ok").Inc()
		return nil
	}

	sc.Error = errorMessage(err, fallback)
	metrics.ControllerOpsTotal.WithLabelValues(op, "error").Inc()
	s.log.Warn("onboarding operation failed", map[string]any{
		"op":         op,
		"session_id": sc.ID(),
		"err":        err,
	})
	return err
}

// storeUser persiste token + user aunque el request del browser ya se haya cortado:
// el backend ya aceptó el cambio.
func (s *Service) storeUser(ctx context.Context, sc *session.Context, u users.User) error {
	patch := session.Patch{User: &u}
	if u.Token != "" {
		token := u.Token
		patch.Token = &token
	}
	return sc.Set(context.WithoutCancel(ctx), patch)
}

// errorMessage: mensaje del backend si lo hay, mensajes de validación, o el fallback.
func errorMessage(err error, fallback string) string {
	if msg, ok := httpclient.MessageOf(err); ok {
		return msg
	}
	var ve *validation.Error
	if errors.As(err, &ve) {
		return ve.Error()
	}
	return fallback
}
