package ioutils

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// WriteError is returned when the output playlist cannot be written.
type WriteError struct {
	// Path is the output file that was being written.
	Path string

	// Err is the underlying file system error.
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write output %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Parameters:
//   - ctx: Context for cancellation, checked before the write starts
//   - path: File path to write to
//   - data: Bytes to write
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/srv/iptv/lists")
//	// Creates /srv, /srv/iptv, and /srv/iptv/lists if needed
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteOutput writes data to path after creating its parent directories.
//
// Any failure is returned as a *WriteError. There is no partial-write
// recovery: a failed write may leave a truncated file behind.
//
// Example:
//
//	err := WriteOutput(ctx, "lists/playlist.m3u", []byte(result.Text))
func WriteOutput(ctx context.Context, path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := WriteFile(ctx, path, data); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
