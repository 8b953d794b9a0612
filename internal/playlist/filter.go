package playlist

import (
	"strings"

	"github.com/handiism/playlist-filter/internal/model"
)

// Matcher decides whether a group title is wanted.
//
// A group matches when it contains any keyword as a substring. The
// comparison is case-sensitive. An empty keyword matches every group,
// including the empty one.
type Matcher struct {
	keywords []string
}

// NewMatcher creates a Matcher for the given keywords.
func NewMatcher(keywords []string) *Matcher {
	return &Matcher{keywords: append([]string(nil), keywords...)}
}

// Match reports whether group contains any of the keywords.
func (m *Matcher) Match(group string) bool {
	for _, keyword := range m.keywords {
		if strings.Contains(group, keyword) {
			return true
		}
	}
	return false
}

// Filter keeps the entries of text whose group-title matches any keyword
// and renders them into a new playlist.
//
// The header is always written, even when nothing matched. Kept counts are
// grouped by the exact group-title.
//
// Example:
//
//	result := Filter("#EXTM3U\n#EXTINF:-1 group-title=\"A\",X\nhttp://x\n", []string{"A"})
//	// result.Text   == "#EXTM3U\n#EXTINF:-1 group-title=\"A\",X\nhttp://x\n"
//	// result.Counts == map[string]int{"A": 1}
func Filter(text string, keywords []string) *model.Result {
	matcher := NewMatcher(keywords)
	parser := NewParser()

	result := model.NewResult(parser.reset(text))
	for {
		entry, ok := parser.next()
		if !ok {
			break
		}
		if matcher.Match(entry.Group) {
			result.Add(entry)
		}
	}

	result.Text = Render(result.Header, result.Entries)
	return result
}

// Render generates playlist content from a header and entries.
//
// Output format:
//
//	#EXTM3U
//	#EXTINF:-1 group-title="News",CCTV-1
//	http://example.com/cctv1.m3u8
//
// Lines are joined with \n and the content ends with a single \n.
func Render(header string, entries []model.Entry) string {
	var sb strings.Builder

	sb.WriteString(header)
	sb.WriteString("\n")

	for _, entry := range entries {
		for _, line := range entry.Lines() {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
