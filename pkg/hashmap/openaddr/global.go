package openaddr

import (
	"github.com/op/go-logging"
	"github.com/scottcagno/hashmap"
	"github.com/scottcagno/hashmap/pkg/hash/strhash"
)

const (
	MaxLoadFactor   = 0.5 // quadratic probing only reaches half the table
	DefaultCapacity = 11  // used when a capacity below one is requested
)

var log = logging.MustGetLogger("openaddr")

var _ hashmap.Map[any] = (*HashMap[any])(nil)

// defaultHashFunc is the hash used when none is supplied
func defaultHashFunc(key string) uint64 {
	return strhash.Default(key)
}
