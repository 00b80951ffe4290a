package chained

import (
	"github.com/op/go-logging"
	"github.com/scottcagno/hashmap"
	"github.com/scottcagno/hashmap/pkg/hash/strhash"
)

const (
	MaxLoadFactor   = 1.0
	DefaultCapacity = 11
)

var log = logging.MustGetLogger("chained")

var _ hashmap.Map[any] = (*HashMap[any])(nil)

// defaultHashFunc is the hash used when none is supplied
func defaultHashFunc(key string) uint64 {
	return strhash.Default(key)
}
