package metrics

import (
	"io"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/scottcagno/hashmap"
	"github.com/scottcagno/hashmap/pkg/hashmap/chained"
)

// DefaultNamespace prefixes every metric name when no namespace is given
const DefaultNamespace = "hashmap"

// Collector is a prometheus.Collector reporting the size, capacity, load
// factor and empty bucket count of every registered table. The tables are
// read while collecting, so they must not be written to at the same time.
type Collector struct {
	tables   *chained.HashMap[hashmap.Stats]
	size     *prometheus.Desc
	capacity *prometheus.Desc
	load     *prometheus.Desc
	empty    *prometheus.Desc
}

// NewCollector returns an empty Collector whose metric names start with namespace
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	labels := []string{"table"}
	return &Collector{
		tables: chained.NewHashMap[hashmap.Stats](chained.DefaultCapacity, nil),
		size: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "size"),
			"Number of live entries in the table.",
			labels, nil,
		),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "capacity"),
			"Number of slots or buckets in the table.",
			labels, nil,
		),
		load: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "load_factor"),
			"Live entries divided by capacity.",
			labels, nil,
		),
		empty: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "empty_buckets"),
			"Number of slots or buckets holding nothing.",
			labels, nil,
		),
	}
}

// Register adds (or replaces) the table reported under name
func (c *Collector) Register(name string, table hashmap.Stats) {
	c.tables.Put(name, table)
}

// Unregister stops reporting the table under name
func (c *Collector) Unregister(name string) {
	c.tables.Remove(name)
}

// Tables returns the number of registered tables
func (c *Collector) Tables() int {
	return c.tables.Size()
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.capacity
	ch <- c.load
	ch <- c.empty
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.tables.Range(func(name string, table hashmap.Stats) bool {
		ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(table.Size()), name)
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(table.Capacity()), name)
		ch <- prometheus.MustNewConstMetric(c.load, prometheus.GaugeValue, table.TableLoad(), name)
		ch <- prometheus.MustNewConstMetric(c.empty, prometheus.GaugeValue, float64(table.EmptyBuckets()), name)
		return true
	})
}

// WriteText gathers every metric from g and writes it to w in the
// prometheus text exposition format
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrapf(err, "writing %s", mf.GetName())
		}
	}
	return nil
}
