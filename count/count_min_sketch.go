package count

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/kinepredict/kinepredict"
)

// CountMinSketch is a _rows_ x _columns_ matrix of counters.
// _allSum_ is the total of every count added.
type CountMinSketch struct {
	rows    uint
	columns uint
	allSum  uint64
	matrix  [][]uint64
}

var _ BaseCountMinSketch = (*CountMinSketch)(nil)

// NewCountMinSketch creates a sketch with the given dimensions
func NewCountMinSketch(rows, columns uint) (*CountMinSketch, error) {
	if rows == 0 || columns == 0 {
		return nil, fmt.Errorf("%w: rows and columns size should be greater than 0", kinepredict.ErrInvalidArgument)
	}
	matrix := make([][]uint64, rows)
	for i := range matrix {
		matrix[i] = make([]uint64, columns)
	}
	return &CountMinSketch{rows: rows, columns: columns, matrix: matrix}, nil
}

// NewCountMinSketchFromEstimates sizes a sketch so that estimates exceed the
// true count by at most _errorRate_ * total with probability 1 - _delta_.
func NewCountMinSketchFromEstimates(errorRate, delta float64) (*CountMinSketch, error) {
	if !(errorRate > 0 && errorRate < 1) || !(delta > 0 && delta < 1) {
		return nil, fmt.Errorf("%w: errorRate %v and delta %v should be in (0, 1)", kinepredict.ErrInvalidArgument, errorRate, delta)
	}
	columns := uint(math.Ceil(math.E / errorRate))
	rows := uint(math.Ceil(math.Log(1 / delta)))
	return NewCountMinSketch(rows, columns)
}

func (cms *CountMinSketch) GetRows() uint {
	return cms.rows
}

func (cms *CountMinSketch) GetColumns() uint {
	return cms.columns
}

// GetAllSum returns the total of every count added to the sketch
func (cms *CountMinSketch) GetAllSum() uint64 {
	return cms.allSum
}

func (cms *CountMinSketch) UpdateOnce(data []byte) {
	cms.Update(data, 1)
}

func (cms *CountMinSketch) Update(data []byte, count uint64) {
	for r, c := range getPositions(data, cms.rows, cms.columns) {
		cms.matrix[r][c] += count
	}
	cms.allSum += count
}

func (cms *CountMinSketch) UpdateString(data string, count uint64) {
	cms.Update([]byte(data), count)
}

// Count returns the estimated count of _data_, the minimum over all rows
func (cms *CountMinSketch) Count(data []byte) uint64 {
	var min uint64
	for r, c := range getPositions(data, cms.rows, cms.columns) {
		if r == 0 || cms.matrix[r][c] < min {
			min = cms.matrix[r][c]
		}
	}
	return min
}

func (cms *CountMinSketch) CountString(data string) uint64 {
	return cms.Count([]byte(data))
}

// Merge adds the counters of _other_ into cms. Both sketches must have the same dimensions.
func (cms *CountMinSketch) Merge(other *CountMinSketch) error {
	if other == nil {
		return fmt.Errorf("%w: can't merge a nil sketch", kinepredict.ErrInvalidArgument)
	}
	if cms.rows != other.rows {
		return fmt.Errorf("%w: can't merge sketches with unequal row counts, %d and %d", kinepredict.ErrInvalidArgument, cms.rows, other.rows)
	}
	if cms.columns != other.columns {
		return fmt.Errorf("%w: can't merge sketches with unequal column counts, %d and %d", kinepredict.ErrInvalidArgument, cms.columns, other.columns)
	}
	for i := range cms.matrix {
		for j := range cms.matrix[i] {
			cms.matrix[i][j] += other.matrix[i][j]
		}
	}
	cms.allSum += other.allSum
	return nil
}

// Clear resets every counter
func (cms *CountMinSketch) Clear() {
	for i := range cms.matrix {
		clear(cms.matrix[i])
	}
	cms.allSum = 0
}

// internal type used to marshal/unmarshal CountMinSketch
type countMinSketchJSON struct {
	Rows    uint       `json:"r"`
	Columns uint       `json:"c"`
	AllSum  uint64     `json:"s"`
	Matrix  [][]uint64 `json:"m"`
}

// Export JSON marshals the sketch and returns a byte slice containing the data
func (cms *CountMinSketch) Export() ([]byte, error) {
	return json.Marshal(countMinSketchJSON{cms.rows, cms.columns, cms.allSum, cms.matrix})
}

// Import JSON unmarshals _data_ into the sketch
func (cms *CountMinSketch) Import(data []byte) error {
	var s countMinSketchJSON
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("kinepredict: error while unmarshalling sketch: %w", err)
	}
	if s.Rows == 0 || s.Columns == 0 || uint(len(s.Matrix)) != s.Rows {
		return fmt.Errorf("%w: malformed sketch of %d rows and %d columns", kinepredict.ErrInvalidArgument, s.Rows, s.Columns)
	}
	for i := range s.Matrix {
		if uint(len(s.Matrix[i])) != s.Columns {
			return fmt.Errorf("%w: row %d has %d columns, expected %d", kinepredict.ErrInvalidArgument, i, len(s.Matrix[i]), s.Columns)
		}
	}
	cms.rows = s.Rows
	cms.columns = s.Columns
	cms.allSum = s.AllSum
	cms.matrix = s.Matrix
	return nil
}

// Equals checks if two sketches have the same dimensions and counters
func (cms *CountMinSketch) Equals(other *CountMinSketch) bool {
	if other == nil {
		return false
	}
	if cms.rows != other.rows || cms.columns != other.columns || cms.allSum != other.allSum {
		return false
	}
	for i := range cms.matrix {
		for j := range cms.matrix[i] {
			if cms.matrix[i][j] != other.matrix[i][j] {
				return false
			}
		}
	}
	return true
}
