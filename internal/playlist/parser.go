package playlist

import (
	"regexp"
	"strings"

	"github.com/handiism/playlist-filter/internal/model"
)

const (
	// HeaderToken marks the start of an extended M3U document.
	HeaderToken = "#EXTM3U"

	// DirectiveToken prefixes a channel metadata line.
	DirectiveToken = "#EXTINF"

	commentPrefix = "#"
	byteOrderMark = "\ufeff"
)

var groupTitlePattern = regexp.MustCompile(`group-title="([^"]*)"`)

// GroupTitle extracts the group-title attribute from a directive line.
// It returns "" when the attribute is absent.
func GroupTitle(line string) string {
	match := groupTitlePattern.FindStringSubmatch(line)
	if match == nil {
		return ""
	}
	return match[1]
}

// Parser splits playlist text into a header and channel entries.
//
// Parser performs a single forward pass over the lines. It never
// backtracks: once a directive has been paired with a URL, scanning
// resumes after the URL line.
//
// Example:
//
//	p := NewParser()
//	header, entries := p.Parse(text)
//	for _, e := range entries {
//	    fmt.Println(e.Group, e.URL)
//	}
type Parser struct {
	lines  []string
	cursor int
}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the playlist header and every complete entry in input
// order, kept or not.
func (p *Parser) Parse(text string) (string, []model.Entry) {
	var entries []model.Entry
	header := p.reset(text)
	for {
		entry, ok := p.next()
		if !ok {
			break
		}
		entries = append(entries, entry)
	}
	return header, entries
}

// reset loads text into the parser and returns its header line.
func (p *Parser) reset(text string) string {
	p.lines = splitLines(text)
	p.cursor = 0
	return findHeader(p.lines)
}

// next advances to the following complete entry. Incomplete directives
// are skipped. It reports false at the end of input.
func (p *Parser) next() (model.Entry, bool) {
	for p.cursor < len(p.lines) {
		line := strings.TrimSpace(p.lines[p.cursor])
		if !strings.HasPrefix(line, DirectiveToken) {
			p.cursor++
			continue
		}

		urlIndex := p.lookahead(p.cursor + 1)
		if urlIndex < 0 {
			p.cursor++
			continue
		}

		p.cursor = urlIndex + 1
		return model.Entry{
			Directive: line,
			URL:       strings.TrimSpace(p.lines[urlIndex]),
			Group:     GroupTitle(line),
		}, true
	}
	return model.Entry{}, false
}

// lookahead returns the index of the first substantive line at or after
// start, or -1 if the input ends or another directive begins first.
func (p *Parser) lookahead(start int) int {
	for i := start; i < len(p.lines); i++ {
		candidate := strings.TrimSpace(p.lines[i])
		switch {
		case candidate == "":
			continue
		case strings.HasPrefix(candidate, DirectiveToken):
			return -1
		case strings.HasPrefix(candidate, commentPrefix):
			continue
		default:
			return i
		}
	}
	return -1
}

// findHeader returns the first line starting with the header token once
// leading byte-order marks and surrounding whitespace are stripped. The
// bare token is returned when no such line exists.
func findHeader(lines []string) string {
	for _, line := range lines {
		normalized := strings.TrimSpace(strings.TrimLeft(line, byteOrderMark))
		if strings.HasPrefix(normalized, HeaderToken) {
			return normalized
		}
	}
	return HeaderToken
}

// splitLines splits text on \n, \r\n and \r. A trailing line break does
// not produce an empty final line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
