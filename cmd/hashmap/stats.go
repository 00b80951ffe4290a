package main

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/scottcagno/hashmap"
	"github.com/scottcagno/hashmap/pkg/hashmap/metrics"
	"github.com/scottcagno/hashmap/pkg/util"
)

type StatsCommand struct {
	Count       int `short:"n" long:"count" default:"1000" description:"number of random keys to insert"`
	RemoveEvery int `short:"r" long:"remove-every" default:"3" description:"remove every n-th key once filled, 0 keeps them all"`
	KeyLength   int `short:"k" long:"key-length" default:"16" description:"length of the random keys"`
}

func (x *StatsCommand) Execute(args []string) error {
	if x.Count < 0 || x.RemoveEvery < 0 {
		return errors.New("stats: count and remove-every must not be negative")
	}
	// 52^4 distinct keys is plenty, anything shorter may never finish
	if x.KeyLength < 4 {
		return errors.Errorf("stats: key length must be at least 4, got %d", x.KeyLength)
	}
	conf, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := conf.NewMap()
	if err != nil {
		return err
	}
	x.fill(m, util.RandKeys(x.Count, x.KeyLength))
	log.Infof("%s table holds %d of %d keys", conf.Variant, m.Size(), x.Count)

	c := metrics.NewCollector("")
	c.Register(conf.Variant, m)
	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		return errors.Wrap(err, "registering collector")
	}
	return metrics.WriteText(os.Stdout, reg)
}

func (x *StatsCommand) fill(m hashmap.Map[string], keys []string) {
	defer util.TimeThis(util.Msg("elapsed"))
	for i, key := range keys {
		m.Put(key, strconv.Itoa(i))
	}
	if x.RemoveEvery > 0 {
		for i := 0; i < len(keys); i += x.RemoveEvery {
			m.Remove(keys[i])
		}
	}
}
