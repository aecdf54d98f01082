package storage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"memorylane/internal/services"
)

type fakeBucket struct {
	objects map[string]objectMetadata
	pages   [][]string
	calls   atomic.Int32
}

func (b *fakeBucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.calls.Add(1)
	const prefix = "/v0/b/album.appspot.com/o"
	if r.URL.Path == prefix {
		if r.URL.Query().Get("prefix") != "memories/" || r.URL.Query().Get("delimiter") != "/" {
			http.Error(w, "bad query", http.StatusBadRequest)
			return
		}
		page := 0
		if token := r.URL.Query().Get("pageToken"); token == "page-2" {
			page = 1
		}
		resp := listResponse{Prefixes: []string{"memories/archive/"}}
		for _, name := range b.pages[page] {
			resp.Items = append(resp.Items, objectItem{Name: name, Bucket: "album.appspot.com"})
		}
		if page == 0 && len(b.pages) > 1 {
			resp.NextPageToken = "page-2"
		}
		_ = json.NewEncoder(w).Encode(resp)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, prefix+"/")
	meta, ok := b.objects[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(meta)
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{
		pages: [][]string{
			{"memories/2022-10-21.jpg", "memories/2022-09-23_a.jpg"},
			{"memories/2022-09-23_b.jpg"},
		},
		objects: map[string]objectMetadata{
			"memories/2022-10-21.jpg":   {Name: "memories/2022-10-21.jpg", Size: "2048", ContentType: "image/jpeg", TimeCreated: "2023-01-03T10:00:00.000Z", DownloadTokens: "tok-3"},
			"memories/2022-09-23_a.jpg": {Name: "memories/2022-09-23_a.jpg", Size: "1024", ContentType: "image/jpeg", TimeCreated: "2023-01-01T10:00:00.000Z", DownloadTokens: "tok-1,tok-old"},
			"memories/2022-09-23_b.jpg": {Name: "memories/2022-09-23_b.jpg", Size: "512", ContentType: "image/jpeg", TimeCreated: "2023-01-02T10:00:00.000Z", DownloadTokens: "tok-2"},
		},
	}
}

func TestFirebaseSourceFollowsPagesAndSorts(t *testing.T) {
	bucket := newFakeBucket()
	server := httptest.NewServer(bucket)
	defer server.Close()

	source := NewFirebaseSource(FirebaseOptions{Endpoint: server.URL + "/", Bucket: "album.appspot.com", MaxConcurrency: 2}, server.Client(), nil)
	assets, err := source.FetchAll(context.Background(), "memories")
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(assets) != 3 {
		t.Fatalf("expected 3 assets, got %d", len(assets))
	}
	want := []string{"2022-09-23_a.jpg", "2022-09-23_b.jpg", "2022-10-21.jpg"}
	for i, name := range want {
		if assets[i].Name != name {
			t.Fatalf("asset %d = %q, want %q", i, assets[i].Name, name)
		}
	}
	first := assets[0]
	wantURL := server.URL + "/v0/b/album.appspot.com/o/memories%2F2022-09-23_a.jpg?alt=media&token=tok-1"
	if first.URL != wantURL {
		t.Fatalf("url = %q, want %q", first.URL, wantURL)
	}
	if first.Size != 1024 || first.FullPath != "memories/2022-09-23_a.jpg" {
		t.Fatalf("unexpected metadata %+v", first)
	}
	if got := bucket.calls.Load(); got != 5 {
		t.Fatalf("expected 2 list + 3 metadata calls, got %d", got)
	}
}

func TestFirebaseSourceStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		marker error
	}{
		{http.StatusForbidden, services.ErrConfiguration},
		{http.StatusNotFound, services.ErrNotFound},
		{http.StatusBadGateway, services.ErrTransient},
	}
	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", tc.status)
		}))
		source := NewFirebaseSource(FirebaseOptions{Endpoint: server.URL, Bucket: "album.appspot.com"}, server.Client(), nil)
		_, err := source.FetchAll(context.Background(), "memories")
		server.Close()
		if !errors.Is(err, tc.marker) {
			t.Fatalf("status %d: expected %v, got %v", tc.status, tc.marker, err)
		}
	}
}

func TestFirebaseSourceMissingMetadata(t *testing.T) {
	bucket := newFakeBucket()
	delete(bucket.objects, "memories/2022-09-23_b.jpg")
	server := httptest.NewServer(bucket)
	defer server.Close()

	source := NewFirebaseSource(FirebaseOptions{Endpoint: server.URL, Bucket: "album.appspot.com"}, server.Client(), nil)
	if _, err := source.FetchAll(context.Background(), "memories"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFirebaseSourceRequiresBucket(t *testing.T) {
	source := NewFirebaseSource(FirebaseOptions{Endpoint: "http://127.0.0.1:1"}, nil, nil)
	if _, err := source.FetchAll(context.Background(), "memories"); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestFirebaseSourceSendsAPIKey(t *testing.T) {
	var key atomic.Value
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		key.Store(r.URL.Query().Get("key"))
		_ = json.NewEncoder(w).Encode(listResponse{})
	}))
	defer server.Close()

	source := NewFirebaseSource(FirebaseOptions{Endpoint: server.URL, Bucket: "b", APIKey: "secret"}, server.Client(), nil)
	assets, err := source.FetchAll(context.Background(), "")
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(assets) != 0 || calls.Load() != 1 || key.Load() != "secret" {
		t.Fatalf("unexpected result %v after %d calls", assets, calls.Load())
	}
}
