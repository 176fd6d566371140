package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/univworks/oppquest/internal/app/features/health"
	"github.com/univworks/oppquest/internal/app/store/kv"
)

func TestServe_StoreConnected(t *testing.T) {
	handler := health.NewHandler(kv.NewMemory(), zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}

	var resp struct {
		Status string `json:"status"`
		Store  string `json:"store"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" || resp.Store != "connected" {
		t.Errorf("response: got %+v", resp)
	}
}

// brokenStore fails every operation, standing in for an unreachable backend.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string, any) error { return errors.New("backend down") }
func (brokenStore) Put(context.Context, string, any) error { return errors.New("backend down") }
func (brokenStore) Delete(context.Context, string) error   { return errors.New("backend down") }
func (brokenStore) Close(context.Context) error            { return nil }

func TestServe_StoreUnavailable(t *testing.T) {
	handler := health.NewHandler(brokenStore{}, zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.Serve(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}

	var resp struct {
		Status string `json:"status"`
		Store  string `json:"store"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "error" || resp.Store != "disconnected" {
		t.Errorf("response: got %+v", resp)
	}
}
