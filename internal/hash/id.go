package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a column or subregion name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// IDs hashes each name in order.
func IDs(names []string) []uint64 {
	ids := make([]uint64, len(names))
	for i, n := range names {
		ids[i] = ID(n)
	}

	return ids
}
