package chained

// Iterator walks the entries of a HashMap bucket by bucket. Each
// Iterator keeps its own position, so several may be used at once, but
// any Put, Remove, Clear or resize on the map invalidates it.
type Iterator[V any] struct {
	buckets []bucket[V]
	next    int
	cur     *entryNode[V]
}

// Iter returns a new Iterator positioned before the first entry
func (m *HashMap[V]) Iter() *Iterator[V] {
	return &Iterator[V]{
		buckets: m.buckets,
	}
}

// Next advances to the next entry and reports whether there was one
func (it *Iterator[V]) Next() bool {
	if it.cur != nil && it.cur.next != nil {
		it.cur = it.cur.next
		return true
	}
	for it.next < len(it.buckets) {
		head := it.buckets[it.next].head
		it.next++
		if head != nil {
			it.cur = head
			return true
		}
	}
	it.cur = nil
	return false
}

// Key returns the key of the current entry
func (it *Iterator[V]) Key() string {
	if it.cur == nil {
		return ""
	}
	return it.cur.key
}

// Value returns the value of the current entry
func (it *Iterator[V]) Value() V {
	if it.cur == nil {
		return *new(V)
	}
	return it.cur.val
}
