// Package monitor implements a full-screen TUI dashboard for local host metrics.
//
// The dashboard shows four gauges, stacked top to bottom: CPU usage, memory
// usage, download throughput and upload throughput. Each is an integer in
// [0,100].
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds loop state (lifecycle state, last snapshot, gauges, tick count)
//   - Update: Processes messages (keystrokes, tick events, window size)
//   - View: Renders the current gauges to a string for display
//
// # Key Components
//
//	Provider     - Source of raw metrics (gopsutil, or /proc via the parsers package)
//	Collector    - Queries a Provider once per tick and assembles a Snapshot
//	RateTracker  - Turns cumulative interface counters into per-tick deltas
//	Normalize    - Maps a Snapshot to bounded DisplayGauges
//
// # Message Flow
//
// The dashboard runs one logical thread:
//
//  1. Init fires the first tickMsg immediately
//  2. On tickMsg the model samples, normalizes and schedules the next tick
//  3. View() re-renders the gauges
//  4. A quit key moves the model to StateTerminating; later ticks are dropped
//
// Network throughput is scaled against a fixed 1000 KB-per-tick ceiling.
// Per-metric failures are logged and read as zero.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
package monitor
