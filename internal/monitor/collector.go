package monitor

import (
	"context"
	"time"

	"github.com/rileyhilliard/sysgauge/internal/errors"
	"github.com/rileyhilliard/sysgauge/internal/logger"
)

// DefaultQueryTimeout bounds each provider query so sampling never blocks a tick.
const DefaultQueryTimeout = 500 * time.Millisecond

// Collector assembles one Snapshot per tick from a Provider, feeding network
// counters through its RateTracker.
type Collector struct {
	provider Provider
	tracker  *RateTracker
	log      logger.Logger
	timeout  time.Duration
}

// NewCollector creates a collector with a fresh RateTracker.
// A nil log discards warnings.
func NewCollector(provider Provider, log logger.Logger) *Collector {
	if log == nil {
		log = logger.Noop()
	}
	return &Collector{
		provider: provider,
		tracker:  NewRateTracker(),
		log:      log,
		timeout:  DefaultQueryTimeout,
	}
}

// SetTimeout sets the per-query timeout.
func (c *Collector) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

// Tracked returns how many interfaces the rate tracker has seen.
func (c *Collector) Tracked() int {
	return c.tracker.Len()
}

// Sample queries the provider and returns this tick's Snapshot.
//
// Sample never fails. A query that errors is logged and its fields read as
// zero. If the interface list is unavailable the tracker is left untouched,
// so the next successful tick reports the movement across the gap.
func (c *Collector) Sample(ctx context.Context) Snapshot {
	var snap Snapshot

	if v, err := c.cpu(ctx); err != nil {
		c.unavailable("CPU usage", err)
	} else {
		snap.CPUPercent = v
	}

	if used, total, err := c.memory(ctx); err != nil {
		c.unavailable("Memory usage", err)
	} else {
		snap.MemoryUsed = used
		snap.MemoryTotal = total
	}

	ifaces, err := c.interfaces(ctx)
	if err != nil {
		c.unavailable("Network counters", err)
		return snap
	}

	snap.DownloadBytes, snap.UploadBytes = c.tracker.Aggregate(ifaces)
	snap.Interfaces = len(ifaces)

	c.log.Debug("sampled cpu=%.1f mem=%d/%d down=%d up=%d ifaces=%d",
		snap.CPUPercent, snap.MemoryUsed, snap.MemoryTotal,
		snap.DownloadBytes, snap.UploadBytes, snap.Interfaces)

	return snap
}

func (c *Collector) cpu(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.provider.CPUPercent(ctx)
}

func (c *Collector) memory(ctx context.Context) (uint64, uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.provider.Memory(ctx)
}

func (c *Collector) interfaces(ctx context.Context) ([]InterfaceCounters, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.provider.Interfaces(ctx)
}

// unavailable logs a soft metrics failure. It never escalates.
func (c *Collector) unavailable(metric string, cause error) {
	e := errors.WrapWithCode(cause, errors.ErrMetrics, metric+" unavailable, showing 0", "")
	c.log.Warn("%s: %v", e.Message, e.Cause)
}
