/*
Package queue implements PriorityQueue, a binary heap ordered by a
caller-supplied comparator.

The element the comparator places before all others is always at the front,
so Peek is O(1) while Push and Pop are O(log n). The heap is not stable:
elements that are equivalent under the comparator pop in an unspecified
relative order. A PriorityQueue is not safe for concurrent use.
*/
package queue

import (
	"cmp"
	"fmt"

	"github.com/kinepredict/kinepredict"
)

// Less reports whether _a_ must be popped before _b_. It must be a strict weak ordering.
type Less[T any] func(a, b T) bool

// Reverse returns the opposite ordering of _before_, turning a min-first
// queue into a max-first one.
func Reverse[T any](before Less[T]) Less[T] {
	return func(a, b T) bool {
		return before(b, a)
	}
}

// PriorityQueue is a dense binary heap. _items_[0] is the front element.
type PriorityQueue[T any] struct {
	items  []T
	before Less[T]
}

// New returns a queue of ordered values popping the smallest first
func New[T cmp.Ordered]() *PriorityQueue[T] {
	return NewWithComparator[T](cmp.Less[T])
}

// NewWithComparator returns a queue popping first the element _before_ ranks first
func NewWithComparator[T any](before Less[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{before: before}
}

// Push adds _element_ to the queue
func (pq *PriorityQueue[T]) Push(element T) {
	pq.items = append(pq.items, element)
	pq.up(len(pq.items) - 1)
}

// Pop removes and returns the front element. On an empty queue it returns
// an error wrapping kinepredict.ErrEmptyContainer and leaves the queue untouched.
func (pq *PriorityQueue[T]) Pop() (T, error) {
	var zero T
	if len(pq.items) == 0 {
		return zero, fmt.Errorf("%w: pop on empty priority queue", kinepredict.ErrEmptyContainer)
	}
	return pq.removeAt(0), nil
}

// Peek returns the front element without removing it
func (pq *PriorityQueue[T]) Peek() (T, error) {
	if len(pq.items) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: peek on empty priority queue", kinepredict.ErrEmptyContainer)
	}
	return pq.items[0], nil
}

// RemoveFunc removes the first element, in heap order, for which _match_
// returns true. It reports false when nothing matched.
func (pq *PriorityQueue[T]) RemoveFunc(match func(T) bool) (T, bool) {
	for i := range pq.items {
		if match(pq.items[i]) {
			return pq.removeAt(i), true
		}
	}
	var zero T
	return zero, false
}

// Values returns a copy of the elements in heap order, which is not sorted order
func (pq *PriorityQueue[T]) Values() []T {
	values := make([]T, len(pq.items))
	copy(values, pq.items)
	return values
}

// IsEmpty reports whether the queue holds no elements
func (pq *PriorityQueue[T]) IsEmpty() bool {
	return len(pq.items) == 0
}

// Len returns the number of elements in the queue
func (pq *PriorityQueue[T]) Len() int {
	return len(pq.items)
}

// Clear drops every element
func (pq *PriorityQueue[T]) Clear() {
	clear(pq.items)
	pq.items = pq.items[:0]
}

// removeAt moves the last element into slot _i_, shrinks the heap and
// repairs it around _i_.
func (pq *PriorityQueue[T]) removeAt(i int) T {
	last := len(pq.items) - 1
	removed := pq.items[i]
	pq.items[i] = pq.items[last]
	var zero T
	pq.items[last] = zero
	pq.items = pq.items[:last]
	if i < last {
		if !pq.down(i) {
			pq.up(i)
		}
	}
	return removed
}

func (pq *PriorityQueue[T]) up(j int) {
	for j > 0 {
		parent := (j - 1) / 2
		if !pq.before(pq.items[j], pq.items[parent]) {
			break
		}
		pq.items[j], pq.items[parent] = pq.items[parent], pq.items[j]
		j = parent
	}
}

// down sifts the element at _i_ toward the leaves and reports whether it moved
func (pq *PriorityQueue[T]) down(i int) bool {
	start := i
	n := len(pq.items)
	for {
		first := i
		left, right := 2*i+1, 2*i+2
		if left < n && pq.before(pq.items[left], pq.items[first]) {
			first = left
		}
		if right < n && pq.before(pq.items[right], pq.items[first]) {
			first = right
		}
		if first == i {
			break
		}
		pq.items[i], pq.items[first] = pq.items[first], pq.items[i]
		i = first
	}
	return i > start
}
