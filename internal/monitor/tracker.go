package monitor

// counterPair is the last observed (received, transmitted) totals for an interface.
type counterPair struct {
	received    uint64
	transmitted uint64
}

// RateTracker turns cumulative interface counters into per-tick deltas.
//
// The first observation of an interface only records a baseline and reports
// zero. Entries are never removed: an interface that disappears keeps its
// baseline, and when it reappears the next delta covers everything it moved
// while unseen. A counter that goes backwards (reset or reinitialized
// interface) yields a zero delta for that tick.
//
// RateTracker is not safe for concurrent use. The dashboard loop is its only
// caller.
type RateTracker struct {
	last map[string]counterPair
}

// NewRateTracker creates an empty tracker.
func NewRateTracker() *RateTracker {
	return &RateTracker{
		last: make(map[string]counterPair),
	}
}

// Update records the current totals for name and returns the movement since
// the previous call for the same name.
func (t *RateTracker) Update(name string, received, transmitted uint64) (rxDelta, txDelta uint64) {
	prev, seen := t.last[name]
	t.last[name] = counterPair{received: received, transmitted: transmitted}

	if !seen {
		return 0, 0
	}
	return saturatingSub(received, prev.received), saturatingSub(transmitted, prev.transmitted)
}

// Aggregate feeds every interface of one tick through Update and sums the deltas.
func (t *RateTracker) Aggregate(ifaces []InterfaceCounters) (download, upload uint64) {
	for _, iface := range ifaces {
		rx, tx := t.Update(iface.Name, iface.Received, iface.Transmitted)
		download += rx
		upload += tx
	}
	return download, upload
}

// Len returns the number of interfaces with a stored baseline.
func (t *RateTracker) Len() int {
	return len(t.last)
}

// saturatingSub returns a-b, or 0 when b > a.
func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
