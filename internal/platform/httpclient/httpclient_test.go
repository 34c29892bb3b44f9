package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestDoJSON_SendsBearerAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			t.Errorf("missing bearer header, got %q", r.Header.Get("Authorization"))
		}
		if r.URL.Path != "/pets" || r.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"p-1"}`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	if err != nil {
		t.Fatalf("NewWithBaseURL: %v", err)
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := c.DoJSON(context.Background(), http.MethodPost, "pets", Bearer("tok-1"), map[string]string{"name": "Milo"}, &out); err != nil {
		t.Fatalf("DoJSON error: %v", err)
	}
	if out.ID != "p-1" {
		t.Fatalf("expected id p-1, got %q", out.ID)
	}
}

func TestDoJSON_APIErrorCarriesBackendMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"User already exists"}`))
	}))
	defer ts.Close()

	c, _ := NewWithBaseURL(ts.URL, time.Second)
	err := c.DoJSON(context.Background(), http.MethodPost, "/users", nil, map[string]string{}, nil)

	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *APIError, got %T %v", err, err)
	}
	if ae.Status != http.StatusBadRequest || ae.Message != "User already exists" {
		t.Fatalf("unexpected api error: %#v", ae)
	}
	if msg, ok := MessageOf(err); !ok || msg != "User already exists" {
		t.Fatalf("MessageOf = %q, %v", msg, ok)
	}
}

func TestDoJSON_APIErrorWithoutJSONBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()

	c, _ := NewWithBaseURL(ts.URL, time.Second)
	err := c.DoJSON(context.Background(), http.MethodGet, "/dashboard", nil, nil, nil)
	if _, ok := MessageOf(err); ok {
		t.Fatalf("expected no backend message for plain text body")
	}
	var ae *APIError
	if !errors.As(err, &ae) || ae.Status != http.StatusBadGateway {
		t.Fatalf("expected 502 APIError, got %v", err)
	}
}

func TestDoJSON_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := ts.URL
	ts.Close()

	c, _ := NewWithBaseURL(base, time.Second)
	err := c.DoJSON(context.Background(), http.MethodGet, "/pets", nil, nil, nil)

	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected *NetworkError, got %T %v", err, err)
	}
}

func TestDoJSON_RelativePathRequiresBaseURL(t *testing.T) {
	c := New(time.Second)
	if err := c.DoJSON(context.Background(), http.MethodGet, "/pets", nil, nil, nil); err == nil {
		t.Fatalf("expected error without BaseURL")
	}
}

func TestDoJSON_OversizedBodyIsNotTruncated(t *testing.T) {
	big := `{"id":"` + strings.Repeat("x", MaxBody) + `"}`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		if r.URL.Path == "/fail" {
			status = http.StatusBadRequest
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(big))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewWithBaseURL: %v", err)
	}

	var out struct {
		ID string `json:"id"`
	}
	err = c.DoJSON(context.Background(), http.MethodGet, "/ok", nil, nil, &out)
	if !errors.Is(err, ErrResponseTooLarge) {
		t.Fatalf("expected ErrResponseTooLarge, got %v", err)
	}
	if out.ID != "" {
		t.Fatalf("nothing should be decoded")
	}

	// en errores del backend se corta el body pero el status se conserva
	err = c.DoJSON(context.Background(), http.MethodGet, "/fail", nil, nil, &out)
	var ae *APIError
	if !errors.As(err, &ae) || ae.Status != http.StatusBadRequest {
		t.Fatalf("expected APIError 400, got %v", err)
	}
	if len(ae.Body) > MaxBody {
		t.Fatalf("error body should be capped, got %d bytes", len(ae.Body))
	}
}
