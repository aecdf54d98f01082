package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"memorylane/internal/api"
)

func TestNewNormalizesBind(t *testing.T) {
	c, err := New("127.0.0.1:7490", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.base.String() != "http://127.0.0.1:7490" {
		t.Fatalf("unexpected base %q", c.base.String())
	}
	c, err = New("https://album.example.com/ignored?x=1", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.base.String() != "https://album.example.com" {
		t.Fatalf("unexpected base %q", c.base.String())
	}
	if c, _ := New("  ", ""); c != nil {
		t.Fatal("expected nil client for empty bind")
	}
}

func TestNilClientIsUnavailable(t *testing.T) {
	var c *Client
	if _, err := c.Status(context.Background()); !errors.Is(err, ErrAPIUnavailable) {
		t.Fatalf("expected ErrAPIUnavailable, got %v", err)
	}
}

func TestStatusSendsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/status" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "unauthorized"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.StatusResponse{Running: true, PID: 42, Backend: "local"})
	}))
	defer server.Close()

	c, err := New(server.URL, "tok")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	status, err := c.Status(context.Background())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !status.Running || status.PID != 42 {
		t.Fatalf("unexpected status %+v", status)
	}

	anonymous, _ := New(server.URL, "")
	_, err = anonymous.Status(context.Background())
	if err == nil || !strings.Contains(err.Error(), "unauthorized") {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestAlbum(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.AlbumResponse{SessionID: "s", Origin: "demo", Stations: []api.StationCard{{ID: "station-0"}}})
	}))
	defer server.Close()

	c, _ := New(server.URL, "")
	resp, err := c.Album(context.Background())
	if err != nil {
		t.Fatalf("Album: %v", err)
	}
	if resp.Origin != "demo" || len(resp.Stations) != 1 {
		t.Fatalf("unexpected album %+v", resp)
	}
}

func TestUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	c, _ := New(addr, "")
	if _, err := c.Status(context.Background()); !errors.Is(err, ErrAPIUnavailable) {
		t.Fatalf("expected ErrAPIUnavailable, got %v", err)
	}
}
