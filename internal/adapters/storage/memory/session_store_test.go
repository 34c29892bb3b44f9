package memory

import (
	"testing"

	"pet-wellness-web/internal/session/sessiontest"
)

func TestSessionStore_Contract(t *testing.T) {
	sessiontest.RunStoreContract(t, NewSessionStore())
}
