package chained

import (
	"fmt"
	"strings"
)

// entry is a key value pair that is found in each bucket
type entry[V any] struct {
	key string
	val V
}

// entryNode is a node in part of our linked list
type entryNode[V any] struct {
	entry[V]
	next *entryNode[V]
}

// bucket represents a single slot in the HashMap table. It is a
// singly linked list of every entry whose key hashes to the slot.
type bucket[V any] struct {
	head  *entryNode[V]
	count int
}

// insert adds a new node holding key and val. It does not check
// whether key is already present; use search first.
func (b *bucket[V]) insert(key string, val V) {
	b.head = &entryNode[V]{
		entry: entry[V]{
			key: key,
			val: val,
		},
		next: b.head,
	}
	b.count++
}

// search returns the node holding key, or nil
func (b *bucket[V]) search(key string) *entryNode[V] {
	current := b.head
	for current != nil {
		if current.entry.key == key {
			return current
		}
		current = current.next
	}
	return nil
}

// delete unlinks the node holding key and reports whether there was one
func (b *bucket[V]) delete(key string) bool {
	if b.head == nil {
		return false
	}
	if b.head.entry.key == key {
		b.head = b.head.next
		b.count--
		return true
	}
	previous := b.head
	for previous.next != nil {
		if previous.next.entry.key == key {
			previous.next = previous.next.next
			b.count--
			return true
		}
		previous = previous.next
	}
	return false
}

// scan calls fn on every node for as long as fn returns true
func (b *bucket[V]) scan(fn func(key string, val V) bool) bool {
	current := b.head
	for current != nil {
		if !fn(current.entry.key, current.entry.val) {
			return false
		}
		current = current.next
	}
	return true
}

func (b *bucket[V]) len() int {
	return b.count
}

func (b *bucket[V]) String() string {
	var sb strings.Builder
	for current := b.head; current != nil; current = current.next {
		if current != b.head {
			sb.WriteString(" -> ")
		}
		fmt.Fprintf(&sb, "%s=%v", current.key, current.val)
	}
	return sb.String()
}
