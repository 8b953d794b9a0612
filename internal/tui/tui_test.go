package tui

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/playlist-filter/internal/config"
	"github.com/handiism/playlist-filter/internal/model"
	"github.com/handiism/playlist-filter/internal/pipeline"
)

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"News", []string{"News"}},
		{" News , Sports ", []string{"News", "Sports"}},
		{"News,,", []string{"News"}},
		{"", nil},
		{"[三网]央卫视直播, [联通]咪视界直播", []string{"[三网]央卫视直播", "[联通]咪视界直播"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseKeywords(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseKeywords(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestModel_PrefillsKeywords(t *testing.T) {
	settings := config.DefaultSettings()
	settings.GroupKeywords = []string{"News", "Sports"}

	m := NewModelWithSettings(settings)
	if got := m.textInput.Value(); got != "News, Sports" {
		t.Errorf("input = %q, want %q", got, "News, Sports")
	}
}

func TestModel_EnterStartsRun(t *testing.T) {
	settings := config.DefaultSettings()
	m := NewModelWithSettings(settings)
	m.textInput.SetValue("News, Sports")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(Model)

	if got.state != StateRunning {
		t.Errorf("state = %v, want StateRunning", got.state)
	}
	if cmd == nil {
		t.Error("enter should return a command")
	}
	if !reflect.DeepEqual(settings.GroupKeywords, []string{"News", "Sports"}) {
		t.Errorf("GroupKeywords = %v", settings.GroupKeywords)
	}
	got.cancel()
}

func TestModel_RunDone(t *testing.T) {
	m := NewModelWithSettings(config.DefaultSettings())
	m.state = StateRunning

	summary := &pipeline.Summary{
		Source:     "http://example.com/list.m3u",
		OutputPath: "playlist.m3u",
		Total:      3,
		Groups: []model.GroupCount{
			{Group: "News", Count: 2},
			{Group: "Sports", Count: 1},
		},
	}

	updated, _ := m.Update(RunDoneMsg{Summary: summary})
	got := updated.(Model)

	if got.state != StateComplete {
		t.Fatalf("state = %v, want StateComplete", got.state)
	}
	view := got.View()
	for _, want := range []string{"Kept entries: 3", "News: 2", "Sports: 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModel_RunError(t *testing.T) {
	m := NewModelWithSettings(config.DefaultSettings())
	m.state = StateRunning

	updated, _ := m.Update(RunDoneMsg{Err: errors.New("failed to fetch source playlist")})
	got := updated.(Model)

	if got.state != StateError {
		t.Fatalf("state = %v, want StateError", got.state)
	}
	if !strings.Contains(got.View(), "failed to fetch source playlist") {
		t.Error("View() should show the error")
	}
}

func TestModel_ProgressFiltersVerbose(t *testing.T) {
	m := NewModelWithSettings(config.DefaultSettings())

	updated, _ := m.Update(ProgressMsg{Event: pipeline.ProgressEvent{Message: "Fetched x", Level: pipeline.LevelVerbose}})
	if got := updated.(Model); len(got.logs) != 0 {
		t.Errorf("verbose event should be hidden, logs = %v", got.logs)
	}

	updated, _ = m.Update(ProgressMsg{Event: pipeline.ProgressEvent{Message: "Error fetching x", Level: pipeline.LevelWarning}})
	if got := updated.(Model); len(got.logs) != 1 {
		t.Errorf("warning event should be logged, logs = %v", got.logs)
	}
}
