package model

// Entry represents a single channel entry of a playlist.
//
// An entry only exists once both halves have been found: a directive
// with no following URL line is never turned into an Entry.
type Entry struct {
	// Directive is the #EXTINF line, trimmed of surrounding whitespace.
	Directive string

	// URL is the stream line paired with the directive.
	URL string

	// Group is the group-title value, or "" when the directive has none.
	Group string
}

// Lines returns the directive and URL in playlist order.
func (e Entry) Lines() []string {
	return []string{e.Directive, e.URL}
}
