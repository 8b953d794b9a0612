// Package pipeline provides the orchestration logic for fetching,
// filtering and writing a playlist.
//
// # Manager
//
// The Manager runs one invocation end to end:
//
//  1. Fetch the playlist from the first source that answers
//  2. Filter entries by group-title keywords
//  3. Write the filtered playlist to the output path
//
// # Basic Usage
//
//	manager := pipeline.NewManager(settings, func(event pipeline.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	summary, err := manager.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// A *http.FetchError or *ioutils.WriteError is returned unchanged. A run
// that keeps no entries still succeeds; it emits a LevelWarning event and
// reports a zero total.
package pipeline
