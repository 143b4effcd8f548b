// Package resource implements the resource-layer contract spec §1 leaves as
// an external collaborator: something that can answer whether a path
// exists, whether it names a file or directory, and return its bytes. The
// core (resolve, bundle) only ever depends on the Layer interface; this
// package additionally ships the two concrete implementations SPEC_FULL.md
// calls out so the engine is testable end-to-end without a real caller
// supplying one.
package resource

import "errors"

// ErrNotFound is returned (wrapped) by Get when path names no file in the
// layer; IsFile and IsDirectory report false instead.
var ErrNotFound = errors.New("resource: not found")

// Layer is the minimal I/O surface a resolver or bundler needs from a
// source tree: existence and kind probes, and raw byte retrieval. It says
// nothing about writing — darklua-go never needs to produce files itself,
// only read and transform them.
//
// Implementations must be safe for concurrent, reentrant calls: bundling
// inlines modules recursively, so a Layer method may be invoked again
// before an earlier call on the same Layer has returned.
type Layer interface {
	// Exists reports whether path names anything in the layer.
	Exists(path string) (bool, error)

	// IsFile reports whether path names a file. It returns false, not an
	// error, when path does not exist.
	IsFile(path string) (bool, error)

	// IsDirectory reports whether path names a directory. It returns
	// false, not an error, when path does not exist.
	IsDirectory(path string) (bool, error)

	// Get returns the raw bytes stored at path, or ErrNotFound (wrapped)
	// if path does not name a file.
	Get(path string) ([]byte, error)
}
