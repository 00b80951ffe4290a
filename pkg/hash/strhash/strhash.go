package strhash

import (
	"hash/fnv"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/scottcagno/hashmap"
)

// ErrUnknownHash is returned by Lookup when no hash function is
// registered under the requested name
var ErrUnknownHash = errors.New("strhash: unknown hash function")

// HashFunction1 sums the code points of the key. It is cheap and
// collides for any two anagrams.
func HashFunction1(key string) uint64 {
	var hash uint64
	for _, r := range key {
		hash += uint64(r)
	}
	return hash
}

// HashFunction2 sums the code points of the key weighted by their
// (one based) position
func HashFunction2(key string) uint64 {
	var hash uint64
	var i uint64
	for _, r := range key {
		i++
		hash += i * uint64(r)
	}
	return hash
}

// XXHash returns the 64-bit xxhash of the key
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// FNV returns the 64-bit FNV-1a hash of the key
func FNV(key string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return h.Sum64()
}

// Default is the hash function used when a map is created without one
var Default hashmap.HashFunc = XXHash

var registry = map[string]hashmap.HashFunc{
	"hash1":  HashFunction1,
	"hash2":  HashFunction2,
	"xxhash": XXHash,
	"fnv":    FNV,
}

// Lookup returns the hash function registered under name
func Lookup(name string) (hashmap.HashFunc, error) {
	fn, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHash, "%q", name)
	}
	return fn, nil
}

// Names returns the registered hash function names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
