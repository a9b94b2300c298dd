package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[int](2)
	assert.True(t, q.IsEmpty())

	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}
	v, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 0, v)

	v, _ = q.Dequeue()
	assert.Equal(t, 0, v)
	q.Enqueue(5)
	q.Enqueue(6)

	var got []int
	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)

	_, ok = q.Dequeue()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)
}

func TestQueueZeroValue(t *testing.T) {
	var q Queue[string]
	q.Enqueue("a")
	q.Enqueue("b")
	assert.Equal(t, 2, q.Len())
	v, _ := q.Dequeue()
	assert.Equal(t, "a", v)
}

func TestQueueDrainIncludesNewItems(t *testing.T) {
	q := NewQueue[int](4)
	q.Enqueue(1)
	q.Enqueue(2)

	var got []int
	n := q.Drain(func(v int) {
		got = append(got, v)
		if v == 1 {
			q.Enqueue(3)
		}
	})
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Zero(t, q.Len())
}

func TestIterator(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6}
	even := func(v int) bool { return v%2 == 0 }

	assert.Equal(t, []int{2, 4, 6}, From(data).Filter(even).Collect())
	assert.Equal(t, 3, From(data).Filter(even).Count())

	v, ok := From(data).Find(func(v int) bool { return v > 3 })
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	assert.False(t, From(data).Any(func(v int) bool { return v > 10 }))

	var seen []int
	first, ok := From(data).Each(func(v int) { seen = append(seen, v) }).Find(even)
	assert.True(t, ok)
	assert.Equal(t, 2, first)
	assert.Equal(t, []int{1, 2}, seen, "iteration stops early")

	counts := CountBy(From(data), func(v int) bool { return even(v) })
	assert.Equal(t, map[bool]int{true: 3, false: 3}, counts)

	next, stop := From(data).Pull()
	defer stop()
	v, ok = next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestQueueAllLeavesItemsQueued(t *testing.T) {
	q := NewQueue[int](2)
	q.Enqueue(1)
	q.Enqueue(2)
	q.Dequeue()
	q.Enqueue(3)
	q.Enqueue(4)

	assert.Equal(t, []int{2, 3, 4}, FromSeq(q.All()).Collect())
	assert.Equal(t, 3, q.Len())

	var empty Queue[int]
	assert.Zero(t, FromSeq(empty.All()).Count())
}
