package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if !reflect.DeepEqual(settings.SourceURLs, DefaultSourceURLs) {
		t.Errorf("SourceURLs = %v, want %v", settings.SourceURLs, DefaultSourceURLs)
	}
	if !reflect.DeepEqual(settings.GroupKeywords, DefaultGroupKeywords) {
		t.Errorf("GroupKeywords = %v, want %v", settings.GroupKeywords, DefaultGroupKeywords)
	}
	if settings.OutputPath != "playlist.m3u" {
		t.Errorf("OutputPath = %q, want playlist.m3u", settings.OutputPath)
	}
	if settings.Timeout() != 30*time.Second {
		t.Errorf("Timeout() = %v, want 30s", settings.Timeout())
	}

	// Defaults must not alias the package-level lists.
	settings.SourceURLs[0] = "changed"
	if DefaultSourceURLs[0] == "changed" {
		t.Error("DefaultSettings should copy DefaultSourceURLs")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(settings, DefaultSettings()) {
		t.Errorf("Load() = %+v, want defaults", settings)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"group_keywords": ["News"], "output_path": "out/news.m3u"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(settings.GroupKeywords, []string{"News"}) {
		t.Errorf("GroupKeywords = %v, want [News]", settings.GroupKeywords)
	}
	if settings.OutputPath != "out/news.m3u" {
		t.Errorf("OutputPath = %q", settings.OutputPath)
	}
	if !reflect.DeepEqual(settings.SourceURLs, DefaultSourceURLs) {
		t.Errorf("SourceURLs = %v, want defaults", settings.SourceURLs)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"group_keywords": [`},
		{"empty output", `{"output_path": ""}`},
		{"zero timeout", `{"timeout_seconds": 0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestSettings_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	settings := DefaultSettings()
	settings.SourceURLs = []string{"http://mirror/list.m3u"}
	settings.SetTimeout(5 * time.Second)

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, settings) {
		t.Errorf("Load() = %+v, want %+v", loaded, settings)
	}
}
