package queue

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinepredict/kinepredict"
)

func drain[T any](t *testing.T, pq *PriorityQueue[T]) []T {
	t.Helper()
	var out []T
	for !pq.IsEmpty() {
		v, err := pq.Pop()
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestDefaultOrder(t *testing.T) {
	pq := New[int]()
	for _, v := range []int{5, 2, 8, 1, 9} {
		pq.Push(v)
	}
	assert.Equal(t, 5, pq.Len())
	front, err := pq.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, front)
	assert.Equal(t, []int{1, 2, 5, 8, 9}, drain(t, pq))
}

func TestReversedOrder(t *testing.T) {
	pq := NewWithComparator[int](Reverse[int](func(a, b int) bool { return a < b }))
	for _, v := range []int{5, 2, 8, 1, 9} {
		pq.Push(v)
	}
	assert.Equal(t, []int{9, 8, 5, 2, 1}, drain(t, pq))
}

func TestEmptyContainer(t *testing.T) {
	pq := New[string]()
	_, err := pq.Pop()
	assert.ErrorIs(t, err, kinepredict.ErrEmptyContainer)
	_, err = pq.Peek()
	assert.ErrorIs(t, err, kinepredict.ErrEmptyContainer)

	pq.Push("only")
	v, err := pq.Pop()
	require.NoError(t, err)
	assert.Equal(t, "only", v)

	_, err = pq.Pop()
	assert.ErrorIs(t, err, kinepredict.ErrEmptyContainer)
	_, err = pq.Peek()
	assert.ErrorIs(t, err, kinepredict.ErrEmptyContainer)
	assert.True(t, pq.IsEmpty())
	assert.Equal(t, 0, pq.Len())
}

func TestHeapSort(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for size := 0; size <= 64; size++ {
		values := make([]int, size)
		for i := range values {
			// small range to force duplicates
			values[i] = r.Intn(size/2 + 1)
		}
		pq := New[int]()
		for _, v := range values {
			pq.Push(v)
		}
		require.Equal(t, size, pq.Len())
		expected := slices.Clone(values)
		slices.Sort(expected)
		got := drain(t, pq)
		if size == 0 {
			assert.Empty(t, got)
			continue
		}
		assert.Equal(t, expected, got, "size %d", size)
	}
}

func TestInterleavedPushPop(t *testing.T) {
	pq := New[int]()
	pq.Push(10)
	pq.Push(4)
	v, _ := pq.Pop()
	assert.Equal(t, 4, v)
	pq.Push(7)
	pq.Push(1)
	pq.Push(12)
	v, _ = pq.Pop()
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{7, 10, 12}, drain(t, pq))
}

type contentScore struct {
	content string
	score   float64
}

func TestContentRanking(t *testing.T) {
	rankings := NewWithComparator[contentScore](func(a, b contentScore) bool { return a.score > b.score })
	rankings.Push(contentScore{"Buy Now - 50% Off!", 0.85})
	rankings.Push(contentScore{"Limited Time Offer", 0.92})
	rankings.Push(contentScore{"Check This Out", 0.67})

	var order []string
	for _, c := range drain(t, rankings) {
		order = append(order, c.content)
	}
	assert.Equal(t, []string{"Limited Time Offer", "Buy Now - 50% Off!", "Check This Out"}, order)
}

func TestRemoveFunc(t *testing.T) {
	pq := New[int]()
	for _, v := range []int{5, 3, 9, 1, 7, 2, 8} {
		pq.Push(v)
	}
	removed, ok := pq.RemoveFunc(func(v int) bool { return v == 3 })
	require.True(t, ok)
	assert.Equal(t, 3, removed)
	_, ok = pq.RemoveFunc(func(v int) bool { return v == 42 })
	assert.False(t, ok)
	removed, ok = pq.RemoveFunc(func(v int) bool { return v == 1 })
	require.True(t, ok)
	assert.Equal(t, 1, removed)
	assert.Equal(t, []int{2, 5, 7, 8, 9}, drain(t, pq))
}

func TestValuesAndClear(t *testing.T) {
	pq := New[int]()
	for _, v := range []int{3, 1, 2} {
		pq.Push(v)
	}
	values := pq.Values()
	assert.ElementsMatch(t, []int{1, 2, 3}, values)
	assert.Equal(t, 1, values[0])
	values[0] = 100
	front, _ := pq.Peek()
	assert.Equal(t, 1, front, "Values must return a copy")

	pq.Clear()
	assert.True(t, pq.IsEmpty())
	_, err := pq.Peek()
	assert.ErrorIs(t, err, kinepredict.ErrEmptyContainer)
	pq.Push(4)
	front, _ = pq.Peek()
	assert.Equal(t, 4, front)
}
