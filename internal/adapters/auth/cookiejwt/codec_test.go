package cookiejwt

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCodec_IssueVerify(t *testing.T) {
	c := New("secret", time.Hour)
	tok, err := c.Issue("sid-1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := c.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.SessionID != "sid-1" {
		t.Fatalf("expected sid-1, got %q", claims.SessionID)
	}
}

func TestCodec_RejectsOtherSecret(t *testing.T) {
	tok, _ := New("secret-a", time.Hour).Issue("sid-1")
	_, err := New("secret-b", time.Hour).Verify(context.Background(), tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCodec_RejectsExpired(t *testing.T) {
	c := New("secret", time.Minute)
	issued := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return issued }
	tok, _ := c.Issue("sid-1")

	c.now = func() time.Time { return issued.Add(2 * time.Minute) }
	if _, err := c.Verify(context.Background(), tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired cookie, got %v", err)
	}
}

func TestCodec_EmptyToken(t *testing.T) {
	if _, err := New("secret", time.Hour).Verify(context.Background(), " "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}
