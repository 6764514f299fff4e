package filters

import (
	"encoding/json"
	"fmt"
	"math"
	"unsafe"

	"github.com/kinepredict/kinepredict"
	"github.com/kinepredict/kinepredict/bitset"
)

// MembershipFilter is a Bloom filter used for duplicate detection.
// _size_ (m) is the number of bits in the filter, fixed at construction
// _numHashes_ (k) is the number of probes applied on every element
// _count_ is the number of Add calls since construction or the last Clear
// _filter_ is the bitset backing the filter
// _strategy_ selects the two base hashes the probes are derived from
type MembershipFilter struct {
	size      uint
	numHashes uint
	count     uint
	filter    bitset.IBitSet
	strategy  HashStrategy
}

// Option configures a MembershipFilter at construction
type Option func(*MembershipFilter)

// WithHashStrategy overrides the default FNVDJB2 base hashes
func WithHashStrategy(strategy HashStrategy) Option {
	return func(f *MembershipFilter) {
		f.strategy = strategy
	}
}

// NewMembershipFilter creates a filter sized for _expectedElements_ at the
// target _falsePositiveRate_. m and k are derived with
// kinepredict.CalculateFilterSize and kinepredict.CalculateNumHashes.
func NewMembershipFilter(expectedElements uint, falsePositiveRate float64, opts ...Option) (*MembershipFilter, error) {
	if err := kinepredict.ValidateFilterParameters(expectedElements, falsePositiveRate); err != nil {
		return nil, err
	}
	size := kinepredict.CalculateFilterSize(expectedElements, falsePositiveRate)
	numHashes := kinepredict.CalculateNumHashes(size, expectedElements)
	return NewMembershipFilterWithBitSet(size, numHashes, bitset.NewBitSetMem(size), opts...)
}

// NewDefaultMembershipFilter creates a filter with kinepredict.DefaultFalsePositiveRate
func NewDefaultMembershipFilter(expectedElements uint, opts ...Option) (*MembershipFilter, error) {
	return NewMembershipFilter(expectedElements, kinepredict.DefaultFalsePositiveRate, opts...)
}

// NewMembershipFilterWithBitSet creates a filter over an existing bitset.
// _size_ must match the size of _filter_ and _numHashes_ must be at least 1.
func NewMembershipFilterWithBitSet(size, numHashes uint, filter bitset.IBitSet, opts ...Option) (*MembershipFilter, error) {
	if filter == nil {
		return nil, fmt.Errorf("%w: bitset is nil", kinepredict.ErrInvalidArgument)
	}
	if size == 0 || numHashes == 0 {
		return nil, fmt.Errorf("%w: size %d and numHashes %d should be greater than 0", kinepredict.ErrInvalidArgument, size, numHashes)
	}
	if filter.Size() != size {
		return nil, fmt.Errorf("%w: size of bitset %v doesn't match with size %v passed", kinepredict.ErrInvalidArgument, filter.Size(), size)
	}
	f := &MembershipFilter{
		size:      size,
		numHashes: numHashes,
		filter:    filter,
	}
	for _, opt := range opts {
		opt(f)
	}
	if !f.strategy.Valid() {
		return nil, fmt.Errorf("%w: unknown hash strategy %v", kinepredict.ErrInvalidArgument, f.strategy)
	}
	return f, nil
}

// Add sets the k bits probed for _data_. Adding an element twice leaves the
// bits unchanged but still counts as an insertion.
func (f *MembershipFilter) Add(data []byte) {
	hashes := f.strategy.hashes(data)
	for i := uint(0); i < f.numHashes; i++ {
		// the index is always below size, so Insert can't fail
		_, _ = f.filter.Insert(f.getIndex(hashes, i))
	}
	f.count++
}

// AddString accepts a string value as _data_ for Add
func (f *MembershipFilter) AddString(data string) {
	f.Add([]byte(data))
}

// Contains returns false if _data_ was definitely never added and true if
// it probably was.
func (f *MembershipFilter) Contains(data []byte) bool {
	hashes := f.strategy.hashes(data)
	for i := uint(0); i < f.numHashes; i++ {
		if ok, _ := f.filter.Has(f.getIndex(hashes, i)); !ok {
			return false
		}
	}
	return true
}

// ContainsString accepts a string value as _data_ for Contains
func (f *MembershipFilter) ContainsString(data string) bool {
	return f.Contains([]byte(data))
}

// Clear zeroes every bit and the insertion count. m and k are kept.
func (f *MembershipFilter) Clear() {
	f.filter.ClearAll()
	f.count = 0
}

// EstimatedFalsePositiveRate returns (1 - e^(-k*n/m))^k for the current
// insertion count n, or 0 for an empty filter.
func (f *MembershipFilter) EstimatedFalsePositiveRate() float64 {
	if f.count == 0 {
		return 0
	}
	k := float64(f.numHashes)
	exponent := -k * float64(f.count) / float64(f.size)
	return math.Pow(1-math.Exp(exponent), k)
}

// MemoryFootprint returns the bit vector size in bytes plus the fixed
// overhead of the filter struct.
func (f *MembershipFilter) MemoryFootprint() uint64 {
	return uint64((f.size+7)/8) + uint64(unsafe.Sizeof(*f))
}

// Cap returns m, the number of bits in the filter
func (f *MembershipFilter) Cap() uint {
	return f.size
}

// NumHashes returns k, the number of probes per element
func (f *MembershipFilter) NumHashes() uint {
	return f.numHashes
}

// Count returns the number of insertions since construction or the last Clear
func (f *MembershipFilter) Count() uint {
	return f.count
}

// HashStrategy returns the base hash pair used by the filter
func (f *MembershipFilter) HashStrategy() HashStrategy {
	return f.strategy
}

// Equals checks if two filters have the same parameters and bits
func (f *MembershipFilter) Equals(other *MembershipFilter) (bool, error) {
	if other == nil {
		return false, nil
	}
	if f.size != other.size || f.numHashes != other.numHashes || f.strategy != other.strategy {
		return false, nil
	}
	return f.filter.Equals(other.filter)
}

// internal type used to marshal/unmarshal MembershipFilter
type membershipFilterJSON struct {
	M uint            `json:"m"`
	K uint            `json:"k"`
	N uint            `json:"n"`
	H string          `json:"h"`
	B json.RawMessage `json:"b"`
}

// Export JSON marshals the filter and returns a byte slice containing the data
func (f *MembershipFilter) Export() ([]byte, error) {
	_, data, err := f.filter.Export()
	if err != nil {
		return nil, err
	}
	return json.Marshal(membershipFilterJSON{f.size, f.numHashes, f.count, f.strategy.String(), data})
}

// Import JSON unmarshals _data_ into the filter, replacing its parameters and bits
func (f *MembershipFilter) Import(data []byte) error {
	var exported membershipFilterJSON
	if err := json.Unmarshal(data, &exported); err != nil {
		return fmt.Errorf("kinepredict: error while unmarshalling filter: %w", err)
	}
	strategy, err := ParseHashStrategy(exported.H)
	if err != nil {
		return err
	}
	if exported.M == 0 || exported.K == 0 {
		return fmt.Errorf("%w: imported size %d and numHashes %d should be greater than 0", kinepredict.ErrInvalidArgument, exported.M, exported.K)
	}
	filter := bitset.NewBitSetMem(0)
	if _, err := filter.Import(exported.B); err != nil {
		return fmt.Errorf("kinepredict: error while unmarshalling filter bitset: %w", err)
	}
	if filter.Size() != exported.M {
		return fmt.Errorf("%w: imported bitset size %d doesn't match size %d", kinepredict.ErrInvalidArgument, filter.Size(), exported.M)
	}
	f.size = exported.M
	f.numHashes = exported.K
	f.count = exported.N
	f.strategy = strategy
	f.filter = filter
	return nil
}

func (f *MembershipFilter) getIndex(hashes [2]uint64, i uint) uint {
	return uint((hashes[0] + uint64(i)*hashes[1]) % uint64(f.size))
}
