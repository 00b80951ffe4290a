package chained

import "fmt"

// FindMode returns the most frequent value(s) in values along with their
// frequency. Values are compared by their fmt.Sprint form. When several
// values tie they are returned in the order they first appear. An empty
// input yields no modes and a frequency of zero.
func FindMode[T any](values []T) ([]T, int) {
	if len(values) == 0 {
		return nil, 0
	}
	keys := make([]string, len(values))
	// first pass, tally every value and track the highest count
	counts := NewHashMap[int](DefaultCapacity, nil)
	var highest int
	for i, v := range values {
		keys[i] = fmt.Sprint(v)
		count, _ := counts.Get(keys[i])
		count++
		counts.Put(keys[i], count)
		if count > highest {
			highest = count
		}
	}
	// second pass, collect each value at the highest count exactly once
	added := NewHashMap[struct{}](DefaultCapacity, nil)
	var modes []T
	for i, v := range values {
		if count, _ := counts.Get(keys[i]); count != highest || added.ContainsKey(keys[i]) {
			continue
		}
		modes = append(modes, v)
		added.Put(keys[i], struct{}{})
	}
	return modes, highest
}
