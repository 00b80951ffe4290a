package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/scottcagno/hashmap"
)

type DumpCommand struct {
	Remove []string `short:"d" long:"remove" description:"remove this key after all pairs are put (repeatable)"`
}

func (x *DumpCommand) Execute(args []string) error {
	pairs, err := parsePairs(args)
	if err != nil {
		return err
	}
	conf, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := conf.NewMap()
	if err != nil {
		return err
	}
	for _, p := range pairs {
		m.Put(p.Key, p.Value)
	}
	for _, key := range x.Remove {
		m.Remove(key)
	}
	if s, ok := m.(fmt.Stringer); ok {
		fmt.Print(s.String())
	}
	fmt.Printf("size: %d capacity: %d load: %.2f empty: %d\n",
		m.Size(), m.Capacity(), m.TableLoad(), m.EmptyBuckets())
	return nil
}

// parsePairs splits each key=value argument
func parsePairs(args []string) ([]hashmap.Entry[string], error) {
	pairs := make([]hashmap.Entry[string], 0, len(args))
	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, errors.Errorf("dump: %q is not a key=value pair", arg)
		}
		pairs = append(pairs, hashmap.Entry[string]{Key: key, Value: val})
	}
	return pairs, nil
}
