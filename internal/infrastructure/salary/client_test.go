package salary

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
	"github.com/ShaharSolema/TasksFlow/internal/infrastructure/config"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.SalaryConfig{URL: serverURL, Key: "k3y", Header: "Authorization"}, zerolog.Nop())
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient(config.SalaryConfig{}, zerolog.Nop())
	if _, err := c.Estimate(context.Background(), "SRE", "", ""); !errors.Is(err, domain.ErrSalaryNotConfigured) {
		t.Fatalf("expected ErrSalaryNotConfigured, got %v", err)
	}
}

func TestClient_Estimate_TopLevelField(t *testing.T) {
	var gotAuth, gotTitle string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotTitle = r.URL.Query().Get("title")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"estimated_salary": 120000, "currency": "EUR"}`))
	}))
	defer srv.Close()

	est, err := newTestClient(srv.URL).Estimate(context.Background(), "Backend Engineer", "Berlin", "full-time")
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	if gotAuth != "Bearer k3y" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
	if gotTitle != "Backend Engineer" {
		t.Fatalf("title not forwarded, got %q", gotTitle)
	}
	if est.Estimate != float64(120000) {
		t.Fatalf("unexpected estimate: %v", est.Estimate)
	}
	if est.Currency != "EUR" {
		t.Fatalf("unexpected currency: %q", est.Currency)
	}
}

func TestClient_Estimate_NestedDataField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"estimate": "95k-110k", "currency": "GBP"}}`))
	}))
	defer srv.Close()

	est, err := newTestClient(srv.URL).Estimate(context.Background(), "SRE", "", "")
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	if est.Estimate != "95k-110k" {
		t.Fatalf("unexpected estimate: %v", est.Estimate)
	}
	if est.Currency != "GBP" {
		t.Fatalf("unexpected currency: %q", est.Currency)
	}
}

func TestClient_Estimate_NoMatchFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"something_else": true}`))
	}))
	defer srv.Close()

	est, err := newTestClient(srv.URL).Estimate(context.Background(), "SRE", "", "")
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	if est.Estimate != nil {
		t.Fatalf("expected null estimate, got %v", est.Estimate)
	}
	if est.Currency != "USD" {
		t.Fatalf("expected USD fallback, got %q", est.Currency)
	}
	if est.Raw["something_else"] != true {
		t.Fatalf("raw payload not preserved: %+v", est.Raw)
	}
}

func TestClient_Estimate_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Estimate(context.Background(), "SRE", "", ""); !errors.Is(err, domain.ErrSalaryUpstream) {
		t.Fatalf("expected ErrSalaryUpstream, got %v", err)
	}
}

func TestClient_Estimate_CustomHeader(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"salary": 1}`))
	}))
	defer srv.Close()

	c := NewClient(config.SalaryConfig{URL: srv.URL, Key: "k3y", Header: "X-Api-Key"}, zerolog.Nop())
	if _, err := c.Estimate(context.Background(), "SRE", "", ""); err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	// Non-Authorization headers carry the raw key, no Bearer prefix.
	if gotKey != "k3y" {
		t.Fatalf("expected raw key, got %q", gotKey)
	}
}
