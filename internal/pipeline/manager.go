package pipeline

import (
	"context"
	"fmt"

	"github.com/handiism/playlist-filter/internal/config"
	"github.com/handiism/playlist-filter/internal/http"
	ioutils "github.com/handiism/playlist-filter/internal/io"
	"github.com/handiism/playlist-filter/internal/model"
	"github.com/handiism/playlist-filter/internal/playlist"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Summary describes a completed run.
type Summary struct {
	Source     string
	OutputPath string
	Total      int
	Groups     []model.GroupCount
}

// Manager coordinates a filter run.
type Manager struct {
	settings *config.Settings
	fetcher  *http.Fetcher

	onProgress func(ProgressEvent)
}

// NewManager creates a new Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	client := http.NewClient(
		http.WithTimeout(settings.Timeout()),
		http.WithUserAgent(settings.UserAgent),
	)
	return NewManagerWithGetter(settings, client, onProgress)
}

// NewManagerWithGetter creates a Manager that fetches through getter.
func NewManagerWithGetter(settings *config.Settings, getter http.Getter, onProgress func(ProgressEvent)) *Manager {
	m := &Manager{
		settings:   settings,
		fetcher:    http.NewFetcher(getter),
		onProgress: onProgress,
	}
	m.fetcher.OnAttempt = m.reportAttempt
	return m
}

// Run fetches, filters and writes the playlist.
//
// Nothing is written unless fetching and filtering both succeeded.
func (m *Manager) Run(ctx context.Context) (*Summary, error) {
	text, source, err := m.fetcher.Fetch(ctx, m.settings.SourceURLs)
	if err != nil {
		m.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
		return nil, err
	}

	result := playlist.Filter(text, m.settings.GroupKeywords)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Kept %d entries in %d group(s)", result.Total(), len(result.Counts)), Level: LevelInfo})

	if err := ioutils.WriteOutput(ctx, m.settings.OutputPath, []byte(result.Text)); err != nil {
		m.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
		return nil, err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s", m.settings.OutputPath), Level: LevelSuccess})

	if result.Total() == 0 {
		m.progress(ProgressEvent{Message: "no entries matched the configured group keywords", Level: LevelWarning})
	}

	return &Summary{
		Source:     source,
		OutputPath: m.settings.OutputPath,
		Total:      result.Total(),
		Groups:     result.SortedCounts(),
	}, nil
}

func (m *Manager) reportAttempt(source string, err error) {
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching %s: %v", source, err), Level: LevelWarning})
		return
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetched %s", source), Level: LevelVerbose})
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
