/*
Package kinepredict holds the pieces shared by the kinepredict data structures:
the error taxonomy and the sizing formulas used by the membership filter.

The structures themselves live in subpackages:

  - filters: MembershipFilter, a Bloom filter for duplicate detection
  - trie: PrefixIndex, exact and prefix lookup over strings
  - queue: PriorityQueue, a comparator-ordered binary heap
  - count: CountMinSketch and TopK for frequency ranking
  - textproc: tokenization helpers that feed the structures above

None of the structures is safe for concurrent use.
*/
package kinepredict

import (
	"fmt"
	"math"
)

// DefaultFalsePositiveRate is the target rate used when none is supplied.
const DefaultFalsePositiveRate = 0.01

// ValidateFilterParameters checks that a filter can be sized for _length_
// elements at the target _errorRate_.
func ValidateFilterParameters(length uint, errorRate float64) error {
	if length < 1 {
		return fmt.Errorf("%w: expected elements must be at least 1, got %d", ErrInvalidArgument, length)
	}
	if math.IsNaN(errorRate) || errorRate <= 0 || errorRate >= 1 {
		return fmt.Errorf("%w: false positive rate must be in (0, 1), got %v", ErrInvalidArgument, errorRate)
	}
	return nil
}

// CalculateFilterSize returns the number of bits m = ceil(-n*ln(p) / ln(2)^2)
func CalculateFilterSize(length uint, errorRate float64) uint {
	return uint(math.Ceil(-((float64(length) * math.Log(errorRate)) / math.Pow(math.Log(2), 2))))
}

// CalculateNumHashes returns k = max(1, round((m/n) * ln(2)))
func CalculateNumHashes(size, length uint) uint {
	if length == 0 {
		return 1
	}
	k := uint(math.Round(float64(size) / float64(length) * math.Log(2)))
	return max(k, 1)
}
