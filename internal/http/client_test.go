package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDecodeUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"plain", []byte("#EXTM3U\n"), "#EXTM3U\n"},
		{"leading BOM", []byte("\xef\xbb\xbf#EXTM3U\n"), "#EXTM3U\n"},
		{"invalid byte", []byte("a\xffb"), "a\ufffdb"},
		{"multibyte", []byte("[三网]央卫视直播"), "[三网]央卫视直播"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeUTF8(tt.input); got != tt.want {
				t.Errorf("DecodeUTF8(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClient_GetString(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("\xef\xbb\xbf#EXTM3U\n"))
	}))
	defer server.Close()

	client := NewClient()
	text, err := client.GetString(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("GetString() error = %v", err)
	}
	if text != "#EXTM3U\n" {
		t.Errorf("GetString() = %q, want %q", text, "#EXTM3U\n")
	}
	if gotUA != DefaultUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, DefaultUserAgent)
	}
}

func TestClient_GetStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := NewClient().Get(context.Background(), server.URL); err == nil {
		t.Error("Get() should fail on HTTP 404")
	}
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(WithTimeout(50 * time.Millisecond))
	if _, err := client.Get(context.Background(), server.URL); err == nil {
		t.Error("Get() should fail when the timeout elapses")
	}
}

func TestClient_WithUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	client := NewClient(WithUserAgent("custom/2.0"))
	if _, err := client.Get(context.Background(), server.URL); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if gotUA != "custom/2.0" {
		t.Errorf("User-Agent = %q, want custom/2.0", gotUA)
	}
}
