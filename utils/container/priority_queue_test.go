package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wan9hao/apollo/utils/container"
)

func TestPriorityQueueBatchBuild(t *testing.T) {
	q := container.NewPriorityQueue[string]()
	assert.Equal(t, 0, q.Len())

	// batch push then heapify once
	q.Push("c", 3)
	q.Push("a", 1)
	q.Push("b", 2)
	q.Heapify()

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, "a", q.First())
	assert.Equal(t, 1.0, q.FirstPriority())

	v, p := q.HeapPop()
	assert.Equal(t, "a", v)
	assert.Equal(t, 1.0, p)
	v, _ = q.HeapPop()
	assert.Equal(t, "b", v)
	v, _ = q.HeapPop()
	assert.Equal(t, "c", v)
	assert.Equal(t, 0, q.Len())
}

func TestPriorityQueueHeapPush(t *testing.T) {
	q := container.NewPriorityQueue[int]()
	for _, p := range []float64{5, 1, 4, 2, 3} {
		q.HeapPush(int(p), p)
	}

	// lowest priority value pops first
	prev := 0.0
	for q.Len() > 0 {
		_, p := q.HeapPop()
		assert.Greater(t, p, prev)
		prev = p
	}
}
