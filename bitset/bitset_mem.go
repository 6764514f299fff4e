package bitset

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// BitSetMem is an in-memory implementation of IBitSet.
// _size_ is the number of addressable bits, fixed at construction
// _set_ is the bitset implementation adopted from https://github.com/bits-and-blooms/bitset
type BitSetMem struct {
	set  *bitset.BitSet
	size uint
}

// NewBitSetMem creates a new BitSetMem of size _size_ with every bit cleared
func NewBitSetMem(size uint) *BitSetMem {
	return &BitSetMem{bitset.New(size), size}
}

// FromDataMem creates an instance of BitSetMem backed by the words in _data_
func FromDataMem(data []uint64) *BitSetMem {
	return &BitSetMem{bitset.From(data), uint(len(data)) * wordSize}
}

// Size returns the size of the bitset
func (bitSet *BitSetMem) Size() uint {
	return bitSet.size
}

// Has checks if the bit at index _index_ is set
func (bitSet *BitSetMem) Has(index uint) (bool, error) {
	return bitSet.set.Test(index), nil
}

// Insert sets the bit at index specified by _index_.
// Indexes past the size are rejected instead of growing the set.
func (bitSet *BitSetMem) Insert(index uint) (bool, error) {
	if index >= bitSet.size {
		return false, fmt.Errorf("kinepredict: index %d out of range for bitset of size %d", index, bitSet.size)
	}
	bitSet.set.Set(index)
	return true, nil
}

// ClearAll resets every bit
func (bitSet *BitSetMem) ClearAll() {
	bitSet.set.ClearAll()
}

// BitCount returns the total number of set bits in the bitset
func (bitSet *BitSetMem) BitCount() (uint, error) {
	return bitSet.set.Count(), nil
}

// Export returns the json marshalling of the bitset
func (bitSet *BitSetMem) Export() (uint, []byte, error) {
	data, err := bitSet.set.MarshalJSON()
	if err != nil {
		return 0, nil, err
	}
	return bitSet.size, data, nil
}

// Import replaces the contents of the bitset with the marshalled json in _data_
func (bitSet *BitSetMem) Import(data []byte) (bool, error) {
	set := &bitset.BitSet{}
	if err := set.UnmarshalJSON(data); err != nil {
		return false, err
	}
	bitSet.set = set
	bitSet.size = set.Len()
	return true, nil
}

// Equals checks if two BitSetMem are equal or not
func (firstBitSet *BitSetMem) Equals(otherBitSet IBitSet) (bool, error) {
	secondBitSet, ok := otherBitSet.(*BitSetMem)
	if !ok {
		return false, fmt.Errorf("kinepredict: invalid bitset type %T, should be *BitSetMem", otherBitSet)
	}
	return firstBitSet.size == secondBitSet.size && firstBitSet.set.Equal(secondBitSet.set), nil
}
