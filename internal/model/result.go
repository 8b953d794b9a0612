package model

import "sort"

// Result holds the outcome of filtering a playlist.
//
// Counts uses the group title as key. The empty group is a bucket of its
// own, distinct from any named group.
type Result struct {
	// Header is the #EXTM3U line written at the top of the output.
	Header string

	// Entries are the kept entries in input order.
	Entries []Entry

	// Counts is the number of kept entries per group title.
	Counts map[string]int

	// Text is the rendered output playlist. It is set by the filter once
	// all entries have been collected.
	Text string
}

// NewResult creates an empty Result with the given header.
func NewResult(header string) *Result {
	return &Result{
		Header: header,
		Counts: make(map[string]int),
	}
}

// Add records a kept entry.
func (r *Result) Add(e Entry) {
	r.Entries = append(r.Entries, e)
	r.Counts[e.Group]++
}

// Total returns the number of kept entries across all groups.
func (r *Result) Total() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

// Groups returns the group titles that have kept entries, sorted.
func (r *Result) Groups() []string {
	groups := make([]string, 0, len(r.Counts))
	for g := range r.Counts {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// GroupCount pairs a group title with its kept-entry count.
type GroupCount struct {
	Group string
	Count int
}

// SortedCounts returns the per-group counts ordered by group title.
func (r *Result) SortedCounts() []GroupCount {
	groups := r.Groups()
	counts := make([]GroupCount, len(groups))
	for i, g := range groups {
		counts[i] = GroupCount{Group: g, Count: r.Counts[g]}
	}
	return counts
}
