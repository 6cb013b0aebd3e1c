package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-space-sync/models"
)

// Run error kinds. A failed Run returns a *RunError whose Kind is one of
// these, so callers select the kind with errors.Is.
var (
	// ErrFatalConfig is returned when the space clients cannot be built.
	ErrFatalConfig = errors.New("fatal configuration error")

	// ErrFetch is returned when either the source delta or the destination
	// snapshot cannot be fetched.
	ErrFetch = errors.New("fetch failed")

	// ErrMalformedContent is returned when fetched content cannot be keyed
	// for reconciliation.
	ErrMalformedContent = errors.New("malformed content")

	// ErrTransform is returned when the source content cannot be converted
	// to destination shape.
	ErrTransform = errors.New("transform failed")

	// ErrPush is returned when the push as a whole fails. Item failures never
	// produce it.
	ErrPush = errors.New("push failed")

	// ErrPersistence is returned when the sync token or the error log cannot
	// be written.
	ErrPersistence = errors.New("persistence failed")
)

// Sides of a reconciliation named in a MalformedContentError.
const (
	SideSource      = "source"
	SideDestination = "destination"
)

// MalformedContentError names the item reconciliation could not key.
type MalformedContentError struct {
	Side   string
	Family string
	// Index is the position of the item in its family, or -1 when the
	// problem is not tied to one item.
	Index int
}

func (e *MalformedContentError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("malformed %s content: %s is missing", e.Side, e.Family)
	}
	return fmt.Sprintf("malformed %s content: %s[%d] has no identifier", e.Side, e.Family, e.Index)
}

// Is reports ErrMalformedContent as a match.
func (e *MalformedContentError) Is(target error) bool {
	return target == ErrMalformedContent
}

// RunError is returned by a failed run. State is the state the run was in
// when it failed.
type RunError struct {
	Kind  error
	State models.RunState
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("space sync %s while %s: %v", e.Kind, e.State, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *RunError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
