// Package errbuffer collects item-level push failures during a sync run.
//
// A [Buffer] is safe for concurrent use. Only the set of records and their
// count are meaningful; append order is not guaranteed when several
// goroutines push at once.
package errbuffer

import (
	"sync"

	"github.com/MKhiriev/go-space-sync/models"
)

// Buffer is an append-only list of error records that is emptied by Drain.
type Buffer struct {
	mu      sync.Mutex
	records []models.ErrorRecord
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// Push appends records.
func (b *Buffer) Push(records ...models.ErrorRecord) {
	if len(records) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = append(b.records, records...)
}

// Len returns the number of buffered records.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.records)
}

// Records returns a copy of the buffered records without clearing them.
func (b *Buffer) Records() []models.ErrorRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.ErrorRecord, len(b.records))
	copy(out, b.records)
	return out
}

// Drain returns every buffered record and leaves the buffer empty. The result
// is never nil.
func (b *Buffer) Drain() []models.ErrorRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.records
	if out == nil {
		out = []models.ErrorRecord{}
	}
	b.records = nil
	return out
}
