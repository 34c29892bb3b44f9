package middleware

import (
	"context"
	"net/http"
	"time"

	"pet-wellness-web/internal/platform/logger"
	"pet-wellness-web/internal/platform/respond"
	"pet-wellness-web/internal/ports/auth"
	"pet-wellness-web/internal/session"

	"github.com/google/uuid"
)

// CookieName es la cookie que lleva el session id firmado.
const CookieName = "pw_session"

type ctxKey string

const sessionKey ctxKey = "session"

type SessionOptions struct {
	Store  session.Store
	Codec  auth.SessionCodec
	TTL    time.Duration
	Secure bool
	Log    logger.Logger
}

// SessionContext:
// - Si viene cookie válida => abre la sesión de ese id.
// - Si no viene o no verifica => crea un id nuevo y setea la cookie.
// - La sesión queda en el context; guard, vistas y controller la leen de ahí.
// Un usuario sin login tiene igual un id: simplemente su estado está vacío.
func SessionContext(opts SessionOptions) func(http.Handler) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid, fresh := sessionID(r, opts.Codec, opts.TTL)
			if sid == "" {
				sid = uuid.NewString()
				fresh = true
			}

			if fresh {
				if err := setCookie(w, opts, sid); err != nil {
					log.Error("session cookie issue failed", map[string]any{"err": err})
					respond.Message(w, http.StatusInternalServerError, "session unavailable")
					return
				}
			}

			sc, err := session.Open(r.Context(), opts.Store, sid)
			if err != nil {
				log.Error("session load failed", map[string]any{"session_id": sid, "err": err})
				respond.Message(w, http.StatusInternalServerError, "session unavailable")
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession devuelve la sesión del request (nil, false si el middleware no corrió).
func GetSession(ctx context.Context) (*session.Context, bool) {
	sc, ok := ctx.Value(sessionKey).(*session.Context)
	return sc, ok && sc != nil
}

// Token devuelve el token del backend guardado en la sesión ("" si no hay).
func Token(ctx context.Context) string {
	if sc, ok := GetSession(ctx); ok {
		return sc.Get().Token
	}
	return ""
}

// WithSession deja sc en el context; útil en tests de handlers.
func WithSession(ctx context.Context, sc *session.Context) context.Context {
	return context.WithValue(ctx, sessionKey, sc)
}

// RequireToken corta con 401 si la sesión no tiene token del backend.
// Solo para /api: las páginas redirigen vía guard.
func RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sc, ok := GetSession(r.Context())
		if !ok || sc.Get().Token == "" {
			respond.Message(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sessionID lee y verifica la cookie. fresh=true si conviene re-emitirla
// (pasó más de la mitad del TTL).
func sessionID(r *http.Request, codec auth.SessionCodec, ttl time.Duration) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	claims, err := codec.Verify(r.Context(), c.Value)
	if err != nil {
		// Cookie vencida o adulterada: sesión nueva.
		return "", false
	}
	if session.ValidateID(claims.SessionID) != nil {
		return "", false
	}

	refresh := false
	if ttl > 0 && !claims.ExpiresAt.IsZero() {
		refresh = time.Until(claims.ExpiresAt) < ttl/2
	}
	return claims.SessionID, refresh
}

func setCookie(w http.ResponseWriter, opts SessionOptions, sid string) error {
	value, err := opts.Codec.Issue(sid)
	if err != nil {
		return err
	}
	c := &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if opts.TTL > 0 {
		c.MaxAge = int(opts.TTL.Seconds())
	}
	http.SetCookie(w, c)
	return nil
}
