// Package ioutils provides file system utilities for playlist-filter.
//
// # File Operations
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
//	// Write the filtered playlist, creating parent directories
//	err := ioutils.WriteOutput(ctx, "out/playlist.m3u", []byte(text))
//
// WriteOutput reports every failure as a *WriteError carrying the target
// path.
package ioutils
