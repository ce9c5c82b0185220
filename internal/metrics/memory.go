package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by the run
	Sys          uint64 // total bytes obtained from the OS
	NumGC        uint32
	PauseTotalNs uint64
}

// MemoryCollector exports runtime memory statistics as gauges. A run ends
// with a single scrape, so the figures describe the process after its lessons.
type MemoryCollector struct {
	heapAlloc *prometheus.Desc
	sys       *prometheus.Desc
	numGC     *prometheus.Desc
	pause     *prometheus.Desc
}

var _ prometheus.Collector = (*MemoryCollector)(nil)

// NewMemoryCollector returns a collector under the given metric namespace.
func NewMemoryCollector(namespace string) *MemoryCollector {
	name := func(n string) string { return prometheus.BuildFQName(namespace, "memory", n) }
	return &MemoryCollector{
		heapAlloc: prometheus.NewDesc(name("heap_alloc_bytes"), "Heap bytes in use at the end of the run.", nil, nil),
		sys:       prometheus.NewDesc(name("sys_bytes"), "Bytes obtained from the OS.", nil, nil),
		numGC:     prometheus.NewDesc(name("gc_cycles"), "Completed GC cycles.", nil, nil),
		pause:     prometheus.NewDesc(name("gc_pause_seconds"), "Cumulative GC pause time.", nil, nil),
	}
}

// Snapshot reads the current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
	}
}

// Describe implements prometheus.Collector.
func (mc *MemoryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- mc.heapAlloc
	ch <- mc.sys
	ch <- mc.numGC
	ch <- mc.pause
}

// Collect implements prometheus.Collector.
func (mc *MemoryCollector) Collect(ch chan<- prometheus.Metric) {
	s := mc.Snapshot()
	ch <- prometheus.MustNewConstMetric(mc.heapAlloc, prometheus.GaugeValue, float64(s.HeapAlloc))
	ch <- prometheus.MustNewConstMetric(mc.sys, prometheus.GaugeValue, float64(s.Sys))
	ch <- prometheus.MustNewConstMetric(mc.numGC, prometheus.GaugeValue, float64(s.NumGC))
	ch <- prometheus.MustNewConstMetric(mc.pause, prometheus.GaugeValue, float64(s.PauseTotalNs)/1e9)
}
