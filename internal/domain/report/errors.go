package report

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind   = errors.New("unknown report kind")
	ErrNoEntities    = errors.New("report request has no entity ids")
	ErrParamMismatch = errors.New("placeholder count does not match parameter count")
)

// ValidationError reports a malformed filter criteria field. It is surfaced
// to the caller before any query executes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError wraps a failed query execution. It is fatal to the request;
// the assembler aborts without writing a partial document.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// RenderingError wraps a backend failure to produce the output file.
type RenderingError struct {
	Path string
	Err  error
}

func (e *RenderingError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Path, e.Err)
}

func (e *RenderingError) Unwrap() error {
	return e.Err
}
