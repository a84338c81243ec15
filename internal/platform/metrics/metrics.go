package metrics

import (
	"sync/atomic"
	"time"
)

// Collector counts HTTP traffic and report outcomes with atomics; cheap
// enough to sit in the request path.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	totalDurationMs uint64
	reportsTotal    uint64
	reportsFailed   uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordReport(failed bool) {
	atomic.AddUint64(&c.reportsTotal, 1)
	if failed {
		atomic.AddUint64(&c.reportsFailed, 1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal": total,
		"errorsTotal":   atomic.LoadUint64(&c.errorRequests),
		"avgDurationMs": avg,
		"reportsTotal":  atomic.LoadUint64(&c.reportsTotal),
		"reportsFailed": atomic.LoadUint64(&c.reportsFailed),
	}
}
