package monitor

// InterfaceCounters is one provider reading for a network interface.
// Counters are cumulative since the interface came up.
type InterfaceCounters struct {
	Name        string
	Received    uint64
	Transmitted uint64
}

// Snapshot is the raw sample for one tick. It is discarded after rendering.
type Snapshot struct {
	CPUPercent    float64 // 0-100, fractional
	MemoryUsed    uint64  // bytes
	MemoryTotal   uint64  // bytes
	DownloadBytes uint64  // summed receive delta across interfaces
	UploadBytes   uint64  // summed transmit delta across interfaces
	Interfaces    int     // interfaces reported this tick
}

// DisplayGauges holds the four bounded percentages drawn each tick.
// Every field is in [0,100].
type DisplayGauges struct {
	CPU      int
	Memory   int
	Download int
	Upload   int
}
