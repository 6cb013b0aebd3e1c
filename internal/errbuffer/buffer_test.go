package errbuffer

import (
	"strconv"
	"sync"
	"testing"

	"github.com/MKhiriev/go-space-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_PushAndDrain(t *testing.T) {
	b := New()
	assert.Equal(t, 0, b.Len())

	b.Push(models.ErrorRecord{EntityID: "a"}, models.ErrorRecord{EntityID: "b"})
	b.Push()
	assert.Equal(t, 2, b.Len())

	drained := b.Drain()
	require.Len(t, drained, 2)
	assert.Equal(t, "a", drained[0].EntityID)
	assert.Equal(t, 0, b.Len())

	again := b.Drain()
	assert.NotNil(t, again)
	assert.Empty(t, again)
}

func TestBuffer_RecordsIsACopy(t *testing.T) {
	b := New()
	b.Push(models.ErrorRecord{EntityID: "a"})

	got := b.Records()
	got[0].EntityID = "changed"

	assert.Equal(t, "a", b.Records()[0].EntityID)
	assert.Equal(t, 1, b.Len())
}

func TestBuffer_ConcurrentPush(t *testing.T) {
	b := New()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Push(models.ErrorRecord{EntityID: strconv.Itoa(i)})
		}()
	}
	wg.Wait()

	drained := b.Drain()
	require.Len(t, drained, 50)

	ids := make(map[string]struct{}, len(drained))
	for _, r := range drained {
		ids[r.EntityID] = struct{}{}
	}
	assert.Len(t, ids, 50)
}
