package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Settings holds all configuration options.
type Settings struct {
	// Source settings
	SourceURLs     []string `json:"source_urls"`
	TimeoutSeconds float64  `json:"timeout_seconds"`
	UserAgent      string   `json:"user_agent"`

	// Filter settings
	GroupKeywords []string `json:"group_keywords"`

	// Output settings
	OutputPath string `json:"output_path"`
}

// DefaultSourceURLs are tried in order when no source is configured.
var DefaultSourceURLs = []string{
	"https://raw.githubusercontent.com/Jsnzkpg/Jsnzkpg/Jsnzkpg/Jsnzkpg1.m3u",
	"https://gh-proxy.org/https://raw.githubusercontent.com/Jsnzkpg/Jsnzkpg/Jsnzkpg/Jsnzkpg1.m3u",
}

// DefaultGroupKeywords select the groups kept when none are configured.
var DefaultGroupKeywords = []string{
	"[三网]央卫视直播",
	"[联通]咪视界直播",
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		SourceURLs:     append([]string(nil), DefaultSourceURLs...),
		TimeoutSeconds: 30,
		UserAgent:      "Mozilla/5.0 (playlist-filter/1.0)",
		GroupKeywords:  append([]string(nil), DefaultGroupKeywords...),
		OutputPath:     "playlist.m3u",
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, settings.Validate()
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that the settings can drive a run.
//
// An empty source or keyword list is allowed: the fetch then fails with a
// FetchError and nothing matches, respectively.
func (s *Settings) Validate() error {
	if s.OutputPath == "" {
		return errors.New("output path must not be empty")
	}
	if s.TimeoutSeconds <= 0 {
		return errors.New("timeout must be positive")
	}
	return nil
}

// Timeout returns TimeoutSeconds as a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds * float64(time.Second))
}

// SetTimeout stores d in TimeoutSeconds.
func (s *Settings) SetTimeout(d time.Duration) {
	s.TimeoutSeconds = d.Seconds()
}
