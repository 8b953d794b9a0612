// Package http provides the HTTP client used to download source playlists.
//
// The Client in this package handles:
//   - User-Agent headers identifying playlist-filter
//   - Timeout handling
//   - UTF-8 decoding of response bodies (BOM stripped, invalid bytes replaced)
//
// The Fetcher tries a list of source URLs in order and returns the first
// one that answers.
//
// # Basic Usage
//
//	client := http.NewClient(http.WithTimeout(30 * time.Second))
//	fetcher := http.NewFetcher(client)
//
//	text, source, err := fetcher.Fetch(ctx, []string{primaryURL, mirrorURL})
//	var fetchErr *http.FetchError
//	if errors.As(err, &fetchErr) {
//	    // every source failed, or none were given
//	}
package http
