package cupid_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cupid_fragments/internal/adapters/cupid"
	"cupid_fragments/internal/domain"
)

func TestClient_GetProperty_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "test-key" {
			t.Errorf("missing api key header")
		}
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			w.WriteHeader(200)
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 123.0, "hotel_name": "Test"})
		}
	}))
	defer ts.Close()

	cl, err := cupid.New(ts.URL, "test-key", 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	got, err := cl.GetProperty(ctx, 123)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id, ok := got["id"].(float64); !ok || int(id) != 123 || got["hotel_name"] != "Test" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if atomic.LoadInt32(&hits) != 3 {
		t.Fatalf("expected 3 calls due to retries, got %d", hits)
	}
}

func TestClient_GetProperty_404FallsBackThenFails(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		http.NotFound(w, r)
	}))
	defer ts.Close()

	cl, err := cupid.New(ts.URL+"/", "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = cl.GetProperty(ctx, 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected domain not found, got %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(paths) != 2 || paths[0] != "/properties/1" || paths[1] != "/property/1" {
		t.Fatalf("expected both endpoint patterns, got %v", paths)
	}
}

func TestClient_GetProperty_Forbidden(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	cl, _ := cupid.New(ts.URL, "test-key", 100)
	_, err := cl.GetProperty(context.Background(), 1)
	if !errors.Is(err, domain.ErrForbidden) || !errors.Is(err, cupid.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := cupid.New("http://x", "", 1); err == nil {
		t.Fatalf("expected error without key")
	}
}
