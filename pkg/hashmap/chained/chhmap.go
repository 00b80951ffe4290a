package chained

import (
	"fmt"
	"strings"

	"github.com/scottcagno/hashmap"
	"github.com/scottcagno/hashmap/pkg/prime"
)

// HashMap represents a separate chaining hashtable implementation
type HashMap[V any] struct {
	hash    hashmap.HashFunc
	size    int
	buckets []bucket[V]
}

// NewHashMap returns a new HashMap with the smallest prime capacity
// >= capacity (or DefaultCapacity if capacity is below one). If hash
// is nil the default hash function is used.
func NewHashMap[V any](capacity int, hash hashmap.HashFunc) *HashMap[V] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	if hash == nil {
		hash = defaultHashFunc
	}
	return &HashMap[V]{
		hash:    hash,
		size:    0,
		buckets: make([]bucket[V], prime.NextPrime(capacity)),
	}
}

// bucketFor returns the bucket key hashes to
func (m *HashMap[V]) bucketFor(key string) *bucket[V] {
	return &m.buckets[m.hash(key)%uint64(len(m.buckets))]
}

// Put inserts a key value entry, or updates the value in place if the
// key is already present. Before a new key is added the table is grown
// to twice its capacity if the insert would bring the load factor to
// MaxLoadFactor or above.
func (m *HashMap[V]) Put(key string, value V) {
	if node := m.bucketFor(key).search(key); node != nil {
		node.val = value
		return
	}
	// check and see if we need to resize
	if float64(m.size+1)/float64(len(m.buckets)) >= MaxLoadFactor {
		m.resize(2 * len(m.buckets))
	}
	m.bucketFor(key).insert(key, value)
	m.size++
}

// Get returns the value for a given key, or returns false if none could be found
func (m *HashMap[V]) Get(key string) (V, bool) {
	node := m.bucketFor(key).search(key)
	if node == nil {
		return *new(V), false
	}
	return node.val, true
}

// ContainsKey reports whether key is present. An empty map holds no keys.
func (m *HashMap[V]) ContainsKey(key string) bool {
	if m.size == 0 {
		return false
	}
	return m.bucketFor(key).search(key) != nil
}

// Remove unlinks the entry for key. Removing a key that is not present
// does nothing.
func (m *HashMap[V]) Remove(key string) {
	if m.bucketFor(key).delete(key) {
		m.size--
	}
}

// ResizeTable rebuilds the table with the smallest prime capacity >= capacity.
// It does nothing if capacity is below one.
func (m *HashMap[V]) ResizeTable(capacity int) {
	if capacity < 1 {
		return
	}
	m.resize(capacity)
}

// resize makes a new map with the new capacity, copies every entry over
// and then swaps it in. The new map is free to grow on its own while
// it is being filled.
func (m *HashMap[V]) resize(capacity int) {
	newHM := NewHashMap[V](capacity, m.hash)
	for i := range m.buckets {
		m.buckets[i].scan(func(key string, val V) bool {
			newHM.Put(key, val)
			return true
		})
	}
	log.Debugf("resized table from %d to %d buckets holding %d entries",
		len(m.buckets), len(newHM.buckets), newHM.size)
	*m = *newHM
}

// Clear empties every bucket. The capacity stays the same.
func (m *HashMap[V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = bucket[V]{}
	}
	m.size = 0
}

// TableLoad returns the current load factor of the HashMap
func (m *HashMap[V]) TableLoad() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// EmptyBuckets returns the number of buckets without any entries
func (m *HashMap[V]) EmptyBuckets() int {
	var count int
	for i := range m.buckets {
		if m.buckets[i].len() == 0 {
			count++
		}
	}
	return count
}

// Size returns the number of entries currently in the HashMap
func (m *HashMap[V]) Size() int {
	return m.size
}

// Capacity returns the number of buckets in the table
func (m *HashMap[V]) Capacity() int {
	return len(m.buckets)
}

// KeysAndValues returns every entry, in no particular order
func (m *HashMap[V]) KeysAndValues() []hashmap.Entry[V] {
	entries := make([]hashmap.Entry[V], 0, m.size)
	m.Range(func(key string, value V) bool {
		entries = append(entries, hashmap.Entry[V]{Key: key, Value: value})
		return true
	})
	return entries
}

// Range calls fn for every entry for as long as fn returns true.
// It is not safe to insert or remove while ranging.
func (m *HashMap[V]) Range(fn func(key string, value V) bool) {
	for i := range m.buckets {
		if !m.buckets[i].scan(fn) {
			return
		}
	}
}

// String prints one line per bucket
func (m *HashMap[V]) String() string {
	var sb strings.Builder
	for i := range m.buckets {
		fmt.Fprintf(&sb, "%d: %s\n", i, m.buckets[i].String())
	}
	return sb.String()
}
