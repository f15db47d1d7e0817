package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClient_Do(t *testing.T) {
	t.Run("success wraps payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
				t.Fatalf("expected bearer header, got %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"o-1","status":"pending"}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, StaticToken("tok-1"), 0)
		env := client.Get(context.Background(), "/orders/o-1")

		if !env.Success || env.Status != http.StatusOK {
			t.Fatalf("unexpected envelope: %+v", env)
		}
		var out struct {
			ID string `json:"id"`
		}
		if err := env.Decode(&out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.ID != "o-1" {
			t.Fatalf("expected o-1, got %s", out.ID)
		}
	})

	t.Run("pre-enveloped response is unwrapped", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"id":"o-2"},"success":true}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, StaticToken(""), 0)
		env := client.Get(context.Background(), "/orders/o-2")

		var out struct {
			ID string `json:"id"`
		}
		if err := env.Decode(&out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.ID != "o-2" {
			t.Fatalf("expected o-2, got %s", out.ID)
		}
	})

	t.Run("non-2xx becomes a failed envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"order not found"}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, StaticToken(""), 0)
		env := client.Get(context.Background(), "/orders/nope")

		if env.Success {
			t.Fatalf("expected failure envelope")
		}
		if env.Status != http.StatusNotFound || env.Error != "order not found" {
			t.Fatalf("unexpected envelope: %+v", env)
		}
		if env.Err() == nil {
			t.Fatalf("expected non-nil Err()")
		}
	})

	t.Run("timeout becomes a failed envelope, no retry", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, StaticToken(""), 20*time.Millisecond)
		env := client.Get(context.Background(), "/slow")

		if env.Success {
			t.Fatalf("expected failure envelope")
		}
		if env.Status != 0 || env.Error == "" {
			t.Fatalf("unexpected envelope: %+v", env)
		}
		if calls != 1 {
			t.Fatalf("expected a single attempt, got %d", calls)
		}
	})

	t.Run("connection refused becomes a failed envelope", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", StaticToken(""), time.Second)
		env := client.Get(context.Background(), "/orders")

		if env.Success || env.Status != 0 {
			t.Fatalf("unexpected envelope: %+v", env)
		}
		if !strings.Contains(env.Error, "request failed") {
			t.Fatalf("unexpected error: %q", env.Error)
		}
	})

	t.Run("post sends json body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected json content type, got %q", ct)
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"o-3"}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, StaticToken(""), 0)
		env := client.Post(context.Background(), "/orders", map[string]string{"user_id": "u-1"})

		if !env.Success || env.Status != http.StatusCreated {
			t.Fatalf("unexpected envelope: %+v", env)
		}
	})
}

func TestEnvelope_Decode(t *testing.T) {
	var out map[string]any
	if err := (Envelope{}).Decode(&out); err == nil {
		t.Fatalf("expected error on empty data")
	}
}
