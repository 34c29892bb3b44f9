package auth

import "time"

// Claims representa lo que trae la cookie de sesión firmada.
type Claims struct {
	SessionID string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
