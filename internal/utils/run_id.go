package utils

import (
	"context"

	"github.com/google/uuid"
)

// NewRunID returns the identifier of a new sync run. Run ids are UUIDv7 so
// log lines and error records of successive runs sort by start time; a
// random UUIDv4 is returned when the clock source fails.
func NewRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// EnsureRunID returns ctx and the run id it carries, attaching a new one
// when ctx has none.
func EnsureRunID(ctx context.Context) (context.Context, string) {
	if runID, ok := GetRunIDFromContext(ctx); ok {
		return ctx, runID
	}
	runID := NewRunID()
	return WithRunID(ctx, runID), runID
}
