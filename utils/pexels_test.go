package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchPhotos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		query := r.URL.Query().Get("query")
		if query != "Goa travel tourism" {
			t.Errorf("query = %q, want destination with travel tourism suffix", query)
		}
		if r.URL.Query().Get("orientation") != "landscape" {
			t.Errorf("orientation = %q, want landscape", r.URL.Query().Get("orientation"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"photos": [
				{"photographer": "A", "src": {"large": "https://img.example/a.jpg"}},
				{"photographer": "B", "src": {"large": "https://img.example/b.jpg"}}
			]
		}`))
	}))
	defer server.Close()

	client := NewPexelsClient("test-key")
	client.BaseURL = server.URL

	photos, err := client.SearchPhotos("Goa", 2)
	if err != nil {
		t.Fatalf("SearchPhotos: %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("got %d photos, want 2", len(photos))
	}
	if photos[0].URL != "https://img.example/a.jpg" {
		t.Errorf("photos[0].URL = %q", photos[0].URL)
	}
	if photos[1].Photographer != "B" {
		t.Errorf("photos[1].Photographer = %q", photos[1].Photographer)
	}
}

func TestSearchPhotosNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewPexelsClient("test-key")
	client.BaseURL = server.URL

	if _, err := client.SearchPhotos("Goa", 2); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestDownloadImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	client := NewPexelsClient("test-key")
	data, err := client.DownloadImage(server.URL + "/a.jpg")
	if err != nil {
		t.Fatalf("DownloadImage: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("data = %q", data)
	}
}

func TestDownloadImageNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewPexelsClient("test-key")
	if _, err := client.DownloadImage(server.URL + "/missing.jpg"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
