package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue(t *testing.T) {
	q := NewInMemoryQueue[string](2)

	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	assert.ErrorIs(t, q.Enqueue("c"), ErrFull)
	assert.Equal(t, 2, q.Size())

	item, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "a", item)

	require.NoError(t, q.Enqueue("c"))
	assert.Equal(t, []string{"b", "c"}, q.ReadAllMessages())
	assert.Equal(t, 0, q.Size())

	_, ok = q.Dequeue()
	assert.False(t, ok)
	assert.Nil(t, q.ReadAllMessages())
}

func TestInMemoryQueue_ClearQueue(t *testing.T) {
	q := NewInMemoryQueue[int](0)
	for i := 0; i < 10; i++ {
		require.NoError(t, q.Enqueue(i))
	}
	q.ClearQueue()
	assert.Equal(t, 0, q.Size())
}

func TestInMemoryQueue_concurrent(t *testing.T) {
	q := NewInMemoryQueue[int](DefaultBufferSize)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				assert.NoError(t, q.Enqueue(i))
			}
		}()
	}
	wg.Wait()
	assert.Len(t, q.ReadAllMessages(), 400)
}
