package openaddr

import (
	"fmt"
	"strings"

	"github.com/scottcagno/hashmap"
	"github.com/scottcagno/hashmap/pkg/prime"
)

// slotState tracks the life cycle of a slot: empty -> occupied ->
// tombstone -> occupied -> ... A slot only goes back to empty when the
// table is cleared or rebuilt.
type slotState uint8

const (
	stateEmpty slotState = iota
	stateOccupied
	stateTombstone
)

// entry is a key value pair that is found in each slot
type entry[V any] struct {
	key string
	val V
}

// slot represents a single position in the HashMap table. The entry
// of a tombstone is kept until the slot is reclaimed.
type slot[V any] struct {
	state slotState
	entry[V]
}

// holds checks if this slot is live and holds the specified key
func (s *slot[V]) holds(key string) bool {
	return s.state == stateOccupied && s.entry.key == key
}

// HashMap represents a closed hashing hashtable implementation
// using quadratic probing
type HashMap[V any] struct {
	hash  hashmap.HashFunc
	size  int
	slots []slot[V]
}

// NewHashMap returns a new HashMap with the smallest prime capacity
// >= capacity (or DefaultCapacity if capacity is below one). If hash
// is nil the default hash function is used.
func NewHashMap[V any](capacity int, hash hashmap.HashFunc) *HashMap[V] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return newHashMap[V](capacity, hash)
}

// newHashMap is the internal variant of the previous function
// and is mainly used when resizing
func newHashMap[V any](capacity int, hash hashmap.HashFunc) *HashMap[V] {
	if hash == nil {
		hash = defaultHashFunc
	}
	return &HashMap[V]{
		hash:  hash,
		size:  0,
		slots: make([]slot[V], prime.NextPrime(capacity)),
	}
}

// probe returns the j-th index of the probe sequence starting at i0
func (m *HashMap[V]) probe(i0, j uint64) uint64 {
	return (i0 + j*j) % uint64(len(m.slots))
}

// findSlot returns the index of the live slot holding key and true.
// If the key is not present it returns the first empty slot on the
// probe sequence and false, or -1 and false when the sequence holds no
// empty slot at all (the table is saturated with tombstones).
func (m *HashMap[V]) findSlot(key string) (int, bool) {
	c := uint64(len(m.slots))
	i0 := m.hash(key) % c
	// the probe sequence repeats itself after c steps
	for j := uint64(0); j < c; j++ {
		i := m.probe(i0, j)
		if m.slots[i].state == stateEmpty {
			return int(i), false
		}
		if m.slots[i].holds(key) {
			return int(i), true
		}
	}
	return -1, false
}

// findFirstAvailSlot returns the index of the first slot on the probe
// sequence that is either empty or a tombstone, or -1 if there is none
func (m *HashMap[V]) findFirstAvailSlot(key string) int {
	c := uint64(len(m.slots))
	i0 := m.hash(key) % c
	for j := uint64(0); j < c; j++ {
		i := m.probe(i0, j)
		if m.slots[i].state != stateOccupied {
			return int(i)
		}
	}
	return -1
}

// Put inserts a key value entry, or updates the value in place if the
// key is already present. Before a new key is added the table is grown
// to twice its capacity if the insert would bring the load factor to
// MaxLoadFactor or above.
func (m *HashMap[V]) Put(key string, value V) {
	// update in place if we already hold the key
	if i, ok := m.findSlot(key); ok {
		m.slots[i].val = value
		return
	}
	// check and see if we need to resize
	if float64(m.size+1)/float64(len(m.slots)) >= MaxLoadFactor {
		m.resize(2 * len(m.slots))
	}
	// with the load factor below one half there is always an empty slot
	// or a tombstone on the probe sequence of a prime sized table
	i := m.findFirstAvailSlot(key)
	m.slots[i] = slot[V]{
		state: stateOccupied,
		entry: entry[V]{
			key: key,
			val: value,
		},
	}
	m.size++
}

// Get returns the value for a given key, or returns false if none could be found
func (m *HashMap[V]) Get(key string) (V, bool) {
	if m.size == 0 {
		return *new(V), false
	}
	i, ok := m.findSlot(key)
	if !ok {
		return *new(V), false
	}
	return m.slots[i].val, true
}

// ContainsKey reports whether key is present. An empty map holds no keys.
func (m *HashMap[V]) ContainsKey(key string) bool {
	if m.size == 0 {
		return false
	}
	_, ok := m.findSlot(key)
	return ok
}

// Remove turns the slot holding key into a tombstone. Removing a key that
// is not present does nothing.
func (m *HashMap[V]) Remove(key string) {
	i, ok := m.findSlot(key)
	if !ok {
		return
	}
	m.slots[i].state = stateTombstone
	m.size--
}

// ResizeTable rebuilds the table with the smallest prime capacity >= capacity.
// It does nothing if capacity is smaller than the number of live entries.
func (m *HashMap[V]) ResizeTable(capacity int) {
	if capacity < m.size {
		return
	}
	m.resize(capacity)
}

// resize makes a new map with the new capacity, puts every live entry
// into it and then swaps it in. Tombstones are dropped. The new map is
// free to grow on its own while it is being filled.
func (m *HashMap[V]) resize(capacity int) {
	newHM := newHashMap[V](capacity, m.hash)
	for i := range m.slots {
		if m.slots[i].state == stateOccupied {
			newHM.Put(m.slots[i].key, m.slots[i].val)
		}
	}
	log.Debugf("resized table from %d to %d slots holding %d entries",
		len(m.slots), len(newHM.slots), newHM.size)
	*m = *newHM
}

// Clear empties every slot. The capacity stays the same.
func (m *HashMap[V]) Clear() {
	for i := range m.slots {
		m.slots[i] = slot[V]{}
	}
	m.size = 0
}

// TableLoad returns the current load factor of the HashMap
func (m *HashMap[V]) TableLoad() float64 {
	return float64(m.size) / float64(len(m.slots))
}

// EmptyBuckets returns the number of empty slots. Tombstones do not count.
func (m *HashMap[V]) EmptyBuckets() int {
	var count int
	for i := range m.slots {
		if m.slots[i].state == stateEmpty {
			count++
		}
	}
	return count
}

// Size returns the number of live entries currently in the HashMap
func (m *HashMap[V]) Size() int {
	return m.size
}

// Capacity returns the number of slots in the table
func (m *HashMap[V]) Capacity() int {
	return len(m.slots)
}

// KeysAndValues returns every live entry, in no particular order
func (m *HashMap[V]) KeysAndValues() []hashmap.Entry[V] {
	entries := make([]hashmap.Entry[V], 0, m.size)
	for it := m.Iter(); it.Next(); {
		entries = append(entries, hashmap.Entry[V]{Key: it.Key(), Value: it.Value()})
	}
	return entries
}

// Range calls fn for every live entry for as long as fn returns true.
// It is not safe to insert or remove while ranging.
func (m *HashMap[V]) Range(fn func(key string, value V) bool) {
	for it := m.Iter(); it.Next(); {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

// String prints one line per slot
func (m *HashMap[V]) String() string {
	var sb strings.Builder
	for i := range m.slots {
		s := &m.slots[i]
		switch s.state {
		case stateEmpty:
			fmt.Fprintf(&sb, "%d: -\n", i)
		case stateOccupied:
			fmt.Fprintf(&sb, "%d: %s=%v\n", i, s.key, s.val)
		case stateTombstone:
			fmt.Fprintf(&sb, "%d: %s=%v (tombstone)\n", i, s.key, s.val)
		}
	}
	return sb.String()
}
