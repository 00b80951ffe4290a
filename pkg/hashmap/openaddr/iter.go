package openaddr

// Iterator walks the live entries of a HashMap in slot order. Each
// Iterator keeps its own position, so several may be used at once, but
// any Put, Remove, Clear or resize on the map invalidates it.
type Iterator[V any] struct {
	slots []slot[V]
	next  int
	cur   *slot[V]
}

// Iter returns a new Iterator positioned before the first entry
func (m *HashMap[V]) Iter() *Iterator[V] {
	return &Iterator[V]{
		slots: m.slots,
	}
}

// Next advances to the next live entry and reports whether there was one
func (it *Iterator[V]) Next() bool {
	for it.next < len(it.slots) {
		s := &it.slots[it.next]
		it.next++
		if s.state == stateOccupied {
			it.cur = s
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
