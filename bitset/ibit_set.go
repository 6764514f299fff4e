/*
Package bitset implements the fixed-size bitsets backing the membership filters.
The in-memory implementation wraps https://github.com/bits-and-blooms/bitset.
*/
package bitset

const wordSize = uint(64)

type IBitSet interface {
	// Size returns the number of bits in the bitset
	Size() uint

	// Has returns true if the bit is set at index, else false
	Has(index uint) (bool, error)

	// Insert sets the bit at index to true
	Insert(index uint) (bool, error)

	// ClearAll resets every bit to false without changing the size
	ClearAll()

	// Equals checks if two bitsets are equal
	Equals(otherBitSet IBitSet) (bool, error)

	// BitCount returns the total number of set bits in the bitset
	BitCount() (uint, error)

	// Export returns the json marshalling of the bitset
	Export() (uint, []byte, error)

	// Import imports the byte array data into the bitset
	Import(data []byte) (bool, error)
}
