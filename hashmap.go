package hashmap

// HashFunc maps a key to a raw hash value. The maps reduce it modulo their
// capacity, so any deterministic function will do.
type HashFunc func(key string) uint64

// Entry is a key value pair as handed out by KeysAndValues
type Entry[V any] struct {
	Key   string
	Value V
}

// Stats is an interface for anything that can report on its table
type Stats interface {
	Size() int
	Capacity() int
	TableLoad() float64
	EmptyBuckets() int
}

// Map is the contract shared by the open addressing and chained
// hash map implementations
type Map[V any] interface {
	Stats
	Put(key string, value V)
	Get(key string) (V, bool)
	ContainsKey(key string) bool
	Remove(key string)
	Clear()
	ResizeTable(capacity int)
	KeysAndValues() []Entry[V]
	Range(fn func(key string, value V) bool)
}
