package count

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/kinepredict/kinepredict"
	"github.com/kinepredict/kinepredict/queue"
)

type heapElement struct {
	value     string
	frequency uint64
}

// worseThan orders candidates for eviction: lowest frequency first, and on
// equal frequency the lexicographically greater value first.
func worseThan(a, b heapElement) bool {
	if a.frequency != b.frequency {
		return a.frequency < b.frequency
	}
	return a.value > b.value
}

// TopK tracks the _k_ most frequent elements of a stream.
// _errorRate_ and _accuracy_ size the count-min _sketch_ holding the counts
// _heap_ holds at most k candidates with the weakest one at the front
type TopK struct {
	k         uint
	errorRate float64
	accuracy  float64
	sketch    *CountMinSketch
	heap      *queue.PriorityQueue[heapElement]
}

// TopKElement is the struct used to return the results of the TopK
type TopKElement struct {
	Element string
	Count   uint64
}

// NewTopK creates a new TopK
// _k_ is the number of top elements to track
// _errorRate_ is the acceptable error rate in the count estimation
// _accuracy_ is the probability delta of exceeding that error
func NewTopK(k uint, errorRate, accuracy float64) (*TopK, error) {
	if k == 0 {
		return nil, fmt.Errorf("%w: k should be greater than 0", kinepredict.ErrInvalidArgument)
	}
	sketch, err := NewCountMinSketchFromEstimates(errorRate, accuracy)
	if err != nil {
		return nil, err
	}
	return &TopK{
		k:         k,
		errorRate: errorRate,
		accuracy:  accuracy,
		sketch:    sketch,
		heap:      queue.NewWithComparator[heapElement](worseThan),
	}, nil
}

// Insert adds _count_ occurrences of _data_. _count_ must be greater than zero.
func (t *TopK) Insert(data []byte, count uint64) error {
	if count == 0 {
		return fmt.Errorf("%w: count must be greater than zero", kinepredict.ErrInvalidArgument)
	}
	element := string(data)
	t.sketch.Update(data, count)
	frequency := t.sketch.Count(data)
	if uint(t.heap.Len()) >= t.k {
		weakest, _ := t.heap.Peek()
		if frequency < weakest.frequency {
			return nil
		}
	}
	t.heap.RemoveFunc(func(e heapElement) bool { return e.value == element })
	t.heap.Push(heapElement{element, frequency})
	if uint(t.heap.Len()) > t.k {
		_, _ = t.heap.Pop()
	}
	return nil
}

// InsertString accepts a string value as _data_ for Insert
func (t *TopK) InsertString(data string, count uint64) error {
	return t.Insert([]byte(data), count)
}

// Values returns the tracked elements, most frequent first and ties in
// lexicographic order
func (t *TopK) Values() []TopKElement {
	candidates := t.heap.Values()
	results := make([]TopKElement, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, TopKElement{c.value, c.frequency})
	}
	slices.SortFunc(results, func(a, b TopKElement) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Element, b.Element)
	})
	return results
}

// K returns the number of elements tracked
func (t *TopK) K() uint {
	return t.k
}

// Clear drops every candidate and resets the sketch
func (t *TopK) Clear() {
	t.sketch.Clear()
	t.heap.Clear()
}

// internal types used to marshal/unmarshal TopK
type heapElementJSON struct {
	Value     string `json:"v"`
	Frequency uint64 `json:"f"`
}

type topKJSON struct {
	K         uint              `json:"k"`
	ErrorRate float64           `json:"e"`
	Accuracy  float64           `json:"a"`
	Sketch    json.RawMessage   `json:"s"`
	Heap      []heapElementJSON `json:"h"`
}

// Export JSON marshals the TopK and returns a byte slice containing the data
func (t *TopK) Export() ([]byte, error) {
	sketch, err := t.sketch.Export()
	if err != nil {
		return nil, err
	}
	heap := make([]heapElementJSON, 0, t.heap.Len())
	for _, e := range t.heap.Values() {
		heap = append(heap, heapElementJSON{e.value, e.frequency})
	}
	return json.Marshal(topKJSON{t.k, t.errorRate, t.accuracy, sketch, heap})
}

// Import JSON unmarshals _data_ into the TopK, replacing its parameters,
// sketch and candidates
func (t *TopK) Import(data []byte) error {
	var exported topKJSON
	if err := json.Unmarshal(data, &exported); err != nil {
		return fmt.Errorf("kinepredict: error while unmarshalling topk: %w", err)
	}
	if exported.K == 0 {
		return fmt.Errorf("%w: imported k should be greater than 0", kinepredict.ErrInvalidArgument)
	}
	if uint(len(exported.Heap)) > exported.K {
		return fmt.Errorf("%w: imported %d candidates for k %d", kinepredict.ErrInvalidArgument, len(exported.Heap), exported.K)
	}
	sketch := &CountMinSketch{}
	if err := sketch.Import(exported.Sketch); err != nil {
		return err
	}
	heap := queue.NewWithComparator[heapElement](worseThan)
	for _, e := range exported.Heap {
		heap.Push(heapElement{e.Value, e.Frequency})
	}
	t.k = exported.K
	t.errorRate = exported.ErrorRate
	t.accuracy = exported.Accuracy
	t.sketch = sketch
	t.heap = heap
	return nil
}

// Equals checks if two TopK structures have the same parameters, sketch and candidates
func (t *TopK) Equals(u *TopK) (bool, error) {
	if u == nil {
		return false, fmt.Errorf("other TopK is nil")
	}
	if t.k != u.k {
		return false, fmt.Errorf("parameter k are not equal, %d and %d", t.k, u.k)
	}
	if t.accuracy != u.accuracy {
		return false, fmt.Errorf("parameter accuracy are not equal, %f and %f", t.accuracy, u.accuracy)
	}
	if t.errorRate != u.errorRate {
		return false, fmt.Errorf("parameter errorRate are not equal, %f and %f", t.errorRate, u.errorRate)
	}
	if !t.sketch.Equals(u.sketch) {
		return false, fmt.Errorf("sketches aren't equal")
	}
	if !slices.Equal(t.Values(), u.Values()) {
		return false, fmt.Errorf("heaps aren't equal")
	}
	return true, nil
}
