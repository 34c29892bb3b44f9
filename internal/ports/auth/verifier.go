package auth

import "context"

// SessionCodec firma y verifica el valor de la cookie de sesión.
type SessionCodec interface {
	Issue(sessionID string) (string, error)
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenFunc resuelve el token del backend del request actual ("" = sin sesión).
// Los handlers del proxy JSON lo reciben en vez de importar la sesión.
type TokenFunc func(ctx context.Context) string
