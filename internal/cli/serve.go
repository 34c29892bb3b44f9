package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pet-wellness-web/internal/adapters/auth/cookiejwt"
	"pet-wellness-web/internal/adapters/backend/rest"
	mem "pet-wellness-web/internal/adapters/storage/memory"
	"pet-wellness-web/internal/adapters/storage/postgres"
	rstore "pet-wellness-web/internal/adapters/storage/redis"
	"pet-wellness-web/internal/platform/config"
	"pet-wellness-web/internal/platform/logger"
	"pet-wellness-web/internal/router"
	"pet-wellness-web/internal/session"

	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 10 * time.Second
	purgeInterval   = time.Hour
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load(ctx)
		if err != nil {
			return err
		}
		log := logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.LogLevel),
			Format: logger.ParseFormat(cfg.LogFormat),
			App:    cfg.AppName,
		})

		store, closeStore, err := openStore(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer closeStore()

		backend, err := rest.NewClient(rest.Config{BaseURL: cfg.Backend.URL, Timeout: cfg.Backend.Timeout})
		if err != nil {
			return fmt.Errorf("backend client: %w", err)
		}

		h, err := router.NewRouter(router.Options{
			Backend:      backend,
			Store:        store,
			Codec:        cookiejwt.New(cfg.Session.Secret, cfg.Session.TTL),
			SessionTTL:   cfg.Session.TTL,
			SecureCookie: cfg.Session.Secure,
			Logger:       log,
		})
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           h,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Env, "session_store": cfg.Session.Store})
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server: %w", err)
		case <-ctx.Done():
		}

		log.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// openStore arma el session.Store según SESSION_STORE y devuelve su close.
func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (session.Store, func(), error) {
	switch cfg.Session.Store {
	case config.StoreRedis:
		client, err := rstore.Connect(ctx, rstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, err
		}
		return rstore.NewSessionStore(client, cfg.Session.TTL), func() { _ = client.Close() }, nil

	case config.StorePostgres:
		db, err := postgres.Open(cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, err
		}
		store := postgres.NewSessionStore(db)
		purgeCtx, stop := context.WithCancel(ctx)
		go purgeLoop(purgeCtx, store, cfg.Session.TTL, log)
		return store, func() { stop(); closeDB(db) }, nil

	default:
		return mem.NewSessionStore(), func() {}, nil
	}
}

// purgeLoop borra sesiones ociosas; postgres no tiene expiración propia.
func purgeLoop(ctx context.Context, store *postgres.SessionStore, ttl time.Duration, log logger.Logger) {
	t := time.NewTicker(purgeInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := store.PurgeIdle(ctx, ttl)
			if err != nil {
				log.Warn("session purge failed", map[string]any{"err": err})
				continue
			}
			if n > 0 {
				log.Info("idle sessions purged", map[string]any{"count": n})
			}
		}
	}
}

func closeDB(db *sql.DB) { _ = db.Close() }
