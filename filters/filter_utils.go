package filters

import (
	"fmt"
	"hash/fnv"

	"github.com/dgryski/go-metro"
	"github.com/twmb/murmur3"

	"github.com/kinepredict/kinepredict"
)

// HashStrategy selects the pair of base hashes a filter derives its probes from.
// Every strategy feeds the same double hashing scheme, pos_i = (h1 + i*h2) mod m.
type HashStrategy int

const (
	// FNVDJB2 pairs a 64-bit FNV-1a hash with a 64-bit DJB2 hash
	FNVDJB2 HashStrategy = iota
	// Metro128 splits the 128-bit metro hash
	Metro128
	// Murmur128 splits the 128-bit murmur3 hash
	Murmur128
)

const metroSeed = 1373

var hashStrategyNames = map[HashStrategy]string{
	FNVDJB2:   "fnv-djb2",
	Metro128:  "metro",
	Murmur128: "murmur3",
}

// Valid reports whether _s_ is one of the declared strategies
func (s HashStrategy) Valid() bool {
	_, ok := hashStrategyNames[s]
	return ok
}

func (s HashStrategy) String() string {
	if name, ok := hashStrategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("HashStrategy(%d)", int(s))
}

// ParseHashStrategy maps a strategy name, as printed by String, back to its value
func ParseHashStrategy(name string) (HashStrategy, error) {
	for strategy, strategyName := range hashStrategyNames {
		if strategyName == name {
			return strategy, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown hash strategy %q", kinepredict.ErrInvalidArgument, name)
}

func (s HashStrategy) hashes(data []byte) [2]uint64 {
	switch s {
	case Metro128:
		hash1, hash2 := metro.Hash128(data, metroSeed)
		return [2]uint64{hash1, hash2}
	case Murmur128:
		hash1, hash2 := murmur3.Sum128(data)
		return [2]uint64{hash1, hash2}
	default:
		return [2]uint64{fnv1a(data), djb2(data)}
	}
}

func fnv1a(data []byte) uint64 {
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}

func djb2(data []byte) uint64 {
	hash := uint64(5381)
	for _, c := range data {
		hash = (hash << 5) + hash + uint64(c)
	}
	return hash
}
