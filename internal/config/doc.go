// Package config provides configuration management for playlist-filter.
//
// This package handles:
//   - Default source URLs, group keywords and output path
//   - Loading and saving settings from JSON files
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Two mirrors of the upstream playlist
//	// Keeps the "[三网]央卫视直播" and "[联通]咪视界直播" groups
//	// Writes playlist.m3u in the working directory
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// Fields missing from the file keep their default values. Command line
// flags are applied on top of the loaded settings by the caller.
package config
