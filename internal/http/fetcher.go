package http

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoSources is the cause reported when Fetch is called without sources.
var ErrNoSources = errors.New("no source URLs were provided")

// FetchError is returned when no source produced a playlist.
//
// Err holds the error of the last attempted source. It is nil when the
// source list was empty.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return "fetch playlist: " + ErrNoSources.Error()
	}
	return fmt.Sprintf("failed to fetch source playlist: %v", e.Err)
}

// Unwrap returns the last underlying error, or ErrNoSources when no
// source was configured.
func (e *FetchError) Unwrap() error {
	if e.Err == nil {
		return ErrNoSources
	}
	return e.Err
}

// Getter retrieves the text behind a URL. *Client implements it.
type Getter interface {
	GetString(ctx context.Context, url string) (string, error)
}

// Fetcher downloads a playlist from the first source that answers.
//
// Sources are tried strictly in order, once each. There is no retry
// within a source and sources are never raced.
type Fetcher struct {
	getter Getter

	// OnAttempt, when set, is called after every attempt with the source
	// and the attempt's error (nil on success).
	OnAttempt func(source string, err error)
}

// NewFetcher creates a Fetcher using getter for each attempt.
func NewFetcher(getter Getter) *Fetcher {
	return &Fetcher{getter: getter}
}

// Fetch returns the text of the first source that succeeds, together
// with that source.
//
// Returns a *FetchError if sources is empty or every source failed.
func (f *Fetcher) Fetch(ctx context.Context, sources []string) (string, string, error) {
	var lastErr error

	for _, source := range sources {
		text, err := f.getter.GetString(ctx, source)
		if f.OnAttempt != nil {
			f.OnAttempt(source, err)
		}
		if err == nil {
			return text, source, nil
		}
		lastErr = err
	}

	return "", "", &FetchError{Err: lastErr}
}
