package vector

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/vector/internal/rawmem"
)

var (
	blocksAllocatedDesc = prometheus.NewDesc(
		"vector_blocks_allocated_total",
		"Total number of element blocks allocated.",
		nil,
		nil,
	)
	blocksReleasedDesc = prometheus.NewDesc(
		"vector_blocks_released_total",
		"Total number of element blocks released.",
		nil,
		nil,
	)
	allocationFailuresDesc = prometheus.NewDesc(
		"vector_allocation_failures_total",
		"Total number of block requests that could not be satisfied.",
		nil,
		nil,
	)
	bytesInUseDesc = prometheus.NewDesc(
		"vector_block_bytes",
		"Bytes currently held by element blocks.",
		nil,
		nil,
	)
)

type collector struct{}

// NewCollector returns a prometheus.Collector exporting the process-wide
// block accounting of all vectors.
func NewCollector() prometheus.Collector {
	return collector{}
}

func (collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- blocksAllocatedDesc
	ch <- blocksReleasedDesc
	ch <- allocationFailuresDesc
	ch <- bytesInUseDesc
}

func (collector) Collect(m chan<- prometheus.Metric) {
	s := rawmem.ReadStats()
	m <- prometheus.MustNewConstMetric(blocksAllocatedDesc, prometheus.CounterValue, float64(s.Allocations))
	m <- prometheus.MustNewConstMetric(blocksReleasedDesc, prometheus.CounterValue, float64(s.Releases))
	m <- prometheus.MustNewConstMetric(allocationFailuresDesc, prometheus.CounterValue, float64(s.Failures))
	m <- prometheus.MustNewConstMetric(bytesInUseDesc, prometheus.GaugeValue, float64(s.BytesInUse))
}
