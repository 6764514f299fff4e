/*
Package count implements probabilistic structures used to rank items by frequency.

 1. Count-Min Sketch: estimates the frequency of items in a stream.
    Estimates never undercount. Refer: http://dimacs.rutgers.edu/~graham/pubs/papers/cm-full.pdf
 2. Top-K: keeps the k most frequent items of a stream, using a count-min
    sketch for the counts and a min-ordered priority queue for the candidates.

The structures are not safe for concurrent use.
*/
package count

import (
	"github.com/dgryski/go-metro"
)

type BaseCountMinSketch interface {
	GetRows() uint
	GetColumns() uint
	Update(data []byte, count uint64)
	UpdateString(data string, count uint64)
	Count(data []byte) uint64
	CountString(data string) uint64
	UpdateOnce(data []byte)
}

const metroSeed = 1373

// getPositions returns one column per row for _data_, derived by double hashing
func getPositions(data []byte, rows, columns uint) []uint {
	positions := make([]uint, rows)
	hash1, hash2 := metro.Hash128(data, metroSeed)
	for r := range positions {
		positions[r] = uint((hash1 + uint64(r)*hash2) % uint64(columns))
	}
	return positions
}
