package editor

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("editor: aborted")
	// ErrNilStore is returned when Edit is called without a value store.
	ErrNilStore = errors.New("editor: value store is nil")
)
