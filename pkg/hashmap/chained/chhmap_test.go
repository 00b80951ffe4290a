package chained

import (
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/scottcagno/hashmap"
	"github.com/scottcagno/hashmap/pkg/hash/strhash"
	"github.com/scottcagno/hashmap/pkg/logging"
	"github.com/scottcagno/hashmap/pkg/prime"
	"github.com/scottcagno/hashmap/pkg/util"
)

var words = util.Words

func TestMain(m *testing.M) {
	if err := logging.Setup(os.Stderr, "error"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// constHash sends every key to bucket zero
func constHash(key string) uint64 {
	return 0
}

func TestNewHashMap(t *testing.T) {
	hm := NewHashMap[[]byte](128, nil)
	util.AssertExpected(t, 0, hm.Size())
	util.AssertExpected(t, 131, hm.Capacity())
	hm.Put("0", nil)
	util.AssertExpected(t, 1, hm.Size())
	for i := 1; i < 5; i++ {
		hm.Put(strconv.Itoa(i), nil)
	}
	util.AssertExpected(t, 5, hm.Size())

	util.AssertExpected(t, DefaultCapacity, NewHashMap[int](0, nil).Capacity())
	util.AssertExpected(t, 3, NewHashMap[int](1, nil).Capacity())
	util.AssertExpected(t, 5, NewHashMap[int](4, nil).Capacity())
}

func Test_HashMap_Put(t *testing.T) {
	hm := NewHashMap[[]byte](128, nil)
	for i := 0; i < len(words); i++ {
		hm.Put(words[i], []byte{0x69})
	}
	util.AssertExpected(t, 25, hm.Size())
	for i := 0; i < len(words); i++ {
		hm.Put(words[i], []byte{0x42})
	}
	util.AssertExpected(t, 25, hm.Size())
	for i := 0; i < len(words); i++ {
		ret, ok := hm.Get(words[i])
		util.AssertTrue(t, ok)
		util.AssertExpected(t, []byte{0x42}, ret)
	}
}

func Test_HashMap_Put_grow(t *testing.T) {
	hm := NewHashMap[int](5, nil)
	for i := 0; i < 4; i++ {
		hm.Put(strconv.Itoa(i), i)
	}
	util.AssertExpected(t, 5, hm.Capacity())
	// the fifth key would bring the load to 1.0
	hm.Put("4", 4)
	util.AssertExpected(t, 11, hm.Capacity())
	util.AssertExpected(t, 5, hm.Size())
	// updates never grow the table
	hm = NewHashMap[int](5, nil)
	for i := 0; i < 4; i++ {
		hm.Put(strconv.Itoa(i), i)
	}
	hm.Put("3", 33)
	util.AssertExpected(t, 5, hm.Capacity())
}

func Test_HashMap_Put_loadInvariant(t *testing.T) {
	for _, name := range strhash.Names() {
		fn, _ := strhash.Lookup(name)
		hm := NewHashMap[int](53, fn)
		for i := 0; i < 500; i++ {
			hm.Put("str"+strconv.Itoa(i), i*100)
			if hm.TableLoad() >= MaxLoadFactor {
				t.Fatalf("%s: load %.3f after put %d", name, hm.TableLoad(), i)
			}
			if !prime.IsPrime(hm.Capacity()) {
				t.Fatalf("%s: capacity %d is not prime", name, hm.Capacity())
			}
		}
		util.AssertExpected(t, 500, hm.Size())
		for i := 0; i < 500; i++ {
			v, ok := hm.Get("str" + strconv.Itoa(i))
			util.AssertTrue(t, ok)
			util.AssertExpected(t, i*100, v)
		}
	}
}

func Test_HashMap_Put_repeatedKeys(t *testing.T) {
	hm := NewHashMap[int](41, strhash.HashFunction2)
	for i := 0; i < 50; i++ {
		hm.Put("str"+strconv.Itoa(i/3), i*100)
	}
	util.AssertExpected(t, 17, hm.Size())
	v, ok := hm.Get("str0")
	util.AssertTrue(t, ok)
	util.AssertExpected(t, 200, v)
	v, _ = hm.Get("str16")
	util.AssertExpected(t, 4900, v)
}

func Test_HashMap_Get(t *testing.T) {
	hm := NewHashMap[int](31, strhash.HashFunction1)
	_, ok := hm.Get("key")
	util.AssertFalse(t, ok)
	hm.Put("key1", 10)
	v, ok := hm.Get("key1")
	util.AssertTrue(t, ok)
	util.AssertExpected(t, 10, v)

	hm = NewHashMap[int](151, strhash.HashFunction2)
	for i := 200; i < 300; i += 7 {
		hm.Put(strconv.Itoa(i), i*10)
	}
	for i := 200; i < 300; i += 7 {
		v, ok := hm.Get(strconv.Itoa(i))
		util.AssertTrue(t, ok)
		util.AssertExpected(t, i*10, v)
		_, ok = hm.Get(strconv.Itoa(i + 1))
		util.AssertFalse(t, ok)
	}
}

func Test_HashMap_ContainsKey(t *testing.T) {
	hm := NewHashMap[int](53, strhash.HashFunction1)
	util.AssertFalse(t, hm.ContainsKey("key1"))
	hm.Put("key1", 10)
	hm.Put("key2", 20)
	hm.Put("key3", 30)
	util.AssertTrue(t, hm.ContainsKey("key1"))
	util.AssertFalse(t, hm.ContainsKey("key4"))
	util.AssertTrue(t, hm.ContainsKey("key2"))
	util.AssertTrue(t, hm.ContainsKey("key3"))
	hm.Remove("key3")
	util.AssertFalse(t, hm.ContainsKey("key3"))

	// a stored zero value is still present
	hm.Put("zero", 0)
	util.AssertTrue(t, hm.ContainsKey("zero"))
}

func Test_HashMap_Remove(t *testing.T) {
	hm := NewHashMap[[]byte](128, nil)
	for i := 0; i < len(words); i++ {
		hm.Put(words[i], []byte{0x69})
	}
	util.AssertExpected(t, 25, hm.Size())
	for i := 0; i < len(words); i++ {
		hm.Remove(words[i])
		util.AssertExpected(t, 24-i, hm.Size())
		_, ok := hm.Get(words[i])
		util.AssertFalse(t, ok)
	}
	hm.Remove(words[0])
	hm.Remove("not-a-word")
	util.AssertExpected(t, 0, hm.Size())
}

func Test_HashMap_Remove_chain(t *testing.T) {
	hm := NewHashMap[int](11, constHash)
	for i := 0; i < 5; i++ {
		hm.Put(strconv.Itoa(i), i)
	}
	util.AssertExpected(t, 10, hm.EmptyBuckets())
	// head, middle and tail of the same chain
	hm.Remove("4")
	hm.Remove("2")
	hm.Remove("0")
	hm.Remove("7")
	util.AssertExpected(t, 2, hm.Size())
	util.AssertTrue(t, hm.ContainsKey("1"))
	util.AssertTrue(t, hm.ContainsKey("3"))
	hm.Remove("1")
	hm.Remove("3")
	util.AssertExpected(t, 0, hm.Size())
	util.AssertExpected(t, 11, hm.EmptyBuckets())
}

func Test_HashMap_ResizeTable(t *testing.T) {
	hm := NewHashMap[int](23, strhash.HashFunction1)
	hm.Put("key1", 10)
	hm.ResizeTable(30)
	util.AssertExpected(t, 1, hm.Size())
	util.AssertExpected(t, 31, hm.Capacity())
	v, ok := hm.Get("key1")
	util.AssertTrue(t, ok)
	util.AssertExpected(t, 10, v)

	// below one is ignored
	hm.ResizeTable(0)
	hm.ResizeTable(-5)
	util.AssertExpected(t, 31, hm.Capacity())

	// shrinking below the size rebuilds and then grows as needed
	for i := 0; i < 10; i++ {
		hm.Put(strconv.Itoa(i), i)
	}
	hm.ResizeTable(1)
	util.AssertExpected(t, 11, hm.Size())
	util.AssertTrue(t, hm.TableLoad() < MaxLoadFactor)
	util.AssertTrue(t, prime.IsPrime(hm.Capacity()))
	for i := 0; i < 10; i++ {
		v, ok := hm.Get(strconv.Itoa(i))
		util.AssertTrue(t, ok)
		util.AssertExpected(t, i, v)
	}
}

func Test_HashMap_ResizeTable_preservesContent(t *testing.T) {
	hm := NewHashMap[int](79, strhash.HashFunction2)
	var keys []int
	for key := 1; key < 1000; key += 13 {
		keys = append(keys, key)
		hm.Put(strconv.Itoa(key), key*42)
	}
	for capacity := 111; capacity < 1000; capacity += 117 {
		hm.ResizeTable(capacity)
		util.AssertTrue(t, prime.IsPrime(hm.Capacity()))
		util.AssertTrue(t, hm.Capacity() >= capacity)
		hm.Put("some key", -1)
		util.AssertTrue(t, hm.ContainsKey("some key"))
		hm.Remove("some key")
		for _, key := range keys {
			v, ok := hm.Get(strconv.Itoa(key))
			util.AssertTrue(t, ok)
			util.AssertExpected(t, key*42, v)
			util.AssertFalse(t, hm.ContainsKey(strconv.Itoa(key+1)))
		}
		util.AssertExpected(t, len(keys), hm.Size())
	}
}

func Test_HashMap_Clear(t *testing.T) {
	hm := NewHashMap[int](101, strhash.HashFunction1)
	hm.Put("key1", 10)
	hm.Put("key2", 20)
	hm.Put("key1", 30)
	util.AssertExpected(t, 2, hm.Size())
	hm.Clear()
	util.AssertExpected(t, 0, hm.Size())
	util.AssertExpected(t, 101, hm.Capacity())
	util.AssertExpected(t, 101, hm.EmptyBuckets())
	util.AssertFalse(t, hm.ContainsKey("key1"))

	hm = NewHashMap[int](53, strhash.HashFunction1)
	hm.Put("key1", 10)
	hm.Put("key2", 20)
	hm.ResizeTable(100)
	util.AssertExpected(t, 101, hm.Capacity())
	hm.Clear()
	util.AssertExpected(t, 0, hm.Size())
	util.AssertExpected(t, 101, hm.Capacity())
}

func Test_HashMap_TableLoad(t *testing.T) {
	hm := NewHashMap[int](101, strhash.HashFunction1)
	util.AssertExpected(t, 0.0, hm.TableLoad())
	hm.Put("key1", 10)
	util.AssertExpected(t, "0.01", fmt.Sprintf("%.2f", hm.TableLoad()))
	hm.Put("key2", 20)
	util.AssertExpected(t, "0.02", fmt.Sprintf("%.2f", hm.TableLoad()))
	hm.Put("key1", 30)
	util.AssertExpected(t, "0.02", fmt.Sprintf("%.2f", hm.TableLoad()))
}

func Test_HashMap_EmptyBuckets(t *testing.T) {
	hm := NewHashMap[int](101, strhash.HashFunction1)
	util.AssertExpected(t, 101, hm.EmptyBuckets())
	hm.Put("key1", 10)
	util.AssertExpected(t, 100, hm.EmptyBuckets())
	hm.Put("key2", 20)
	util.AssertExpected(t, 99, hm.EmptyBuckets())
	hm.Put("key1", 30)
	util.AssertExpected(t, 99, hm.EmptyBuckets())
	hm.Put("key4", 40)
	util.AssertExpected(t, 98, hm.EmptyBuckets())

	// everything lands in the same chain
	hm = NewHashMap[int](11, constHash)
	for i := 0; i < 7; i++ {
		hm.Put(strconv.Itoa(i), i)
	}
	util.AssertExpected(t, 10, hm.EmptyBuckets())
}

func Test_HashMap_KeysAndValues(t *testing.T) {
	hm := NewHashMap[string](11, strhash.HashFunction2)
	for i := 1; i <= 5; i++ {
		hm.Put(strconv.Itoa(i), strconv.Itoa(i*10))
	}
	want := []hashmap.Entry[string]{
		{Key: "1", Value: "10"},
		{Key: "2", Value: "20"},
		{Key: "3", Value: "30"},
		{Key: "4", Value: "40"},
		{Key: "5", Value: "50"},
	}
	util.AssertSameElements(t, want, hm.KeysAndValues())

	hm.ResizeTable(2)
	util.AssertSameElements(t, want, hm.KeysAndValues())

	hm.Put("20", "200")
	hm.Remove("1")
	hm.ResizeTable(12)
	want = append(want[1:], hashmap.Entry[string]{Key: "20", Value: "200"})
	util.AssertSameElements(t, want, hm.KeysAndValues())
}

func Test_HashMap_Iter(t *testing.T) {
	hm := NewHashMap[int](11, nil)
	for i := 0; i < len(words); i++ {
		hm.Put(words[i], i)
	}
	var keys []string
	for it := hm.Iter(); it.Next(); {
		v, ok := hm.Get(it.Key())
		util.AssertTrue(t, ok)
		util.AssertExpected(t, v, it.Value())
		keys = append(keys, it.Key())
	}
	util.AssertSameElements(t, words, keys)

	// chains are walked node by node, nested iterators do not interfere
	hm = NewHashMap[int](3, constHash)
	hm.Put("a", 1)
	hm.Put("b", 2)
	var pairs int
	for outer := hm.Iter(); outer.Next(); {
		for inner := hm.Iter(); inner.Next(); {
			pairs++
		}
	}
	util.AssertExpected(t, 4, pairs)

	it := NewHashMap[int](3, nil).Iter()
	util.AssertFalse(t, it.Next())
	util.AssertExpected(t, "", it.Key())
	util.AssertExpected(t, 0, it.Value())
}

func Test_HashMap_Range(t *testing.T) {
	hm := NewHashMap[[]byte](128, nil)
	for i := 0; i < len(words); i++ {
		hm.Put(words[i], []byte{0x69})
	}
	var counted int
	hm.Range(func(key string, value []byte) bool {
		if key != "" && value[0] == 0x69 {
			counted++
			return true
		}
		return false
	})
	util.AssertExpected(t, 25, counted)

	counted = 0
	hm.Range(func(key string, value []byte) bool {
		counted++
		return counted < 10
	})
	util.AssertExpected(t, 10, counted)
}

func Test_HashMap_String(t *testing.T) {
	hm := NewHashMap[int](3, constHash)
	hm.Put("a", 1)
	hm.Put("b", 2)
	util.AssertExpected(t, "0: b=2 -> a=1\n1: \n2: \n", hm.String())
}

var result interface{}

func BenchmarkHashMap_Put(b *testing.B) {
	keys := util.RandKeys(4096, 12)
	hm := NewHashMap[int](128, nil)

	b.ResetTimer()
	b.ReportAllocs()

	for n := 0; n < b.N; n++ {
		hm.Put(keys[n%len(keys)], n)
	}
	result = hm
}

func BenchmarkHashMap_Get(b *testing.B) {
	keys := util.RandKeys(4096, 12)
	hm := NewHashMap[int](128, nil)
	for i, key := range keys {
		hm.Put(key, i)
	}

	b.ResetTimer()
	b.ReportAllocs()

	var v int
	for n := 0; n < b.N; n++ {
		v, _ = hm.Get(keys[n%len(keys)])
	}
	result = v
}
