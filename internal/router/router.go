package router

import (
	"errors"
	"net/http"
	"time"

	_ "pet-wellness-web/docs"
	"pet-wellness-web/internal/domain/appointments"
	"pet-wellness-web/internal/domain/dashboard"
	"pet-wellness-web/internal/domain/healthrecords"
	"pet-wellness-web/internal/domain/messages"
	"pet-wellness-web/internal/domain/onboarding"
	"pet-wellness-web/internal/domain/pets"
	"pet-wellness-web/internal/middleware"
	"pet-wellness-web/internal/navigation"
	"pet-wellness-web/internal/platform/logger"
	"pet-wellness-web/internal/ports/auth"
	"pet-wellness-web/internal/session"
	"pet-wellness-web/internal/views"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Backend es todo lo que el web client consume del backend REST.
// *rest.Client lo implementa; los tests usan el mismo cliente contra un httptest.Server.
type Backend interface {
	onboarding.Gateway
	pets.Gateway
	appointments.Gateway
	healthrecords.Gateway
	messages.Gateway
	dashboard.Gateway
}

type Options struct {
	Backend Backend
	Store   session.Store
	Codec   auth.SessionCodec

	SessionTTL   time.Duration
	SecureCookie bool

	Logger logger.Logger // puede ser nil
}

func NewRouter(opts Options) (http.Handler, error) {
	if opts.Backend == nil || opts.Store == nil || opts.Codec == nil {
		return nil, errors.New("router: backend, store and codec are required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	v, err := views.New(log)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	onboardingSvc := onboarding.NewService(opts.Backend, log)

	// Todo lo que depende de la sesión del browser.
	r.Group(func(sr chi.Router) {
		sr.Use(middleware.SessionContext(middleware.SessionOptions{
			Store:  opts.Store,
			Codec:  opts.Codec,
			TTL:    opts.SessionTTL,
			Secure: opts.SecureCookie,
			Log:    log,
		}))

		// "/" nunca renderiza: el guard siempre manda a /login.
		sr.With(navigation.Guard(navigation.RouteRoot)).Get(navigation.RouteRoot.String(), func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, navigation.RouteLogin.String(), http.StatusSeeOther)
		})

		onboarding.RegisterRoutes(sr, onboardingSvc, v)
		dashboard.RegisterRoutes(sr, opts.Backend, v, log)

		sr.Route("/api", func(ar chi.Router) {
			ar.Use(middleware.RequireToken)

			token := auth.TokenFunc(middleware.Token)
			onboarding.RegisterAPIRoutes(ar, onboardingSvc)
			pets.RegisterRoutes(ar, opts.Backend, token)
			appointments.RegisterRoutes(ar, opts.Backend, token)
			healthrecords.RegisterRoutes(ar, opts.Backend, token)
			messages.RegisterRoutes(ar, opts.Backend, token)
			dashboard.RegisterAPIRoutes(ar, opts.Backend)
		})
	})

	return r, nil
}
