package parsers

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/rileyhilliard/sysgauge/internal/monitor"
)

// CPUJiffies is the aggregate cpu line of /proc/stat.
type CPUJiffies struct {
	Total uint64
	Idle  uint64 // idle + iowait
}

// ParseLinuxCPU parses the aggregate "cpu " line from /proc/stat.
func ParseLinuxCPU(procStat string) (CPUJiffies, error) {
	scanner := bufio.NewScanner(strings.NewReader(procStat))

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu ") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 5 {
			return CPUJiffies{}, fmt.Errorf("invalid /proc/stat cpu line: %s", line)
		}

		// Fields: cpu user nice system idle iowait irq softirq steal guest guest_nice
		var j CPUJiffies
		for i := 1; i < len(fields); i++ {
			val, err := strconv.ParseUint(fields[i], 10, 64)
			if err != nil {
				return CPUJiffies{}, fmt.Errorf("failed to parse cpu field %d: %w", i, err)
			}
			j.Total += val

			// idle is field 4, iowait is field 5
			if i == 4 || i == 5 {
				j.Idle += val
			}
		}
		return j, nil
	}

	if err := scanner.Err(); err != nil {
		return CPUJiffies{}, fmt.Errorf("error scanning /proc/stat: %w", err)
	}
	return CPUJiffies{}, fmt.Errorf("no aggregate cpu line in /proc/stat")
}

// BusyPercent returns utilization between two readings. Without a usable
// previous reading (nil, or counters that did not advance) it falls back to
// the average since boot.
func BusyPercent(prev *CPUJiffies, curr CPUJiffies) float64 {
	if prev != nil && curr.Total > prev.Total && curr.Idle >= prev.Idle {
		total := curr.Total - prev.Total
		idle := curr.Idle - prev.Idle
		if idle > total {
			return 0
		}
		return float64(total-idle) / float64(total) * 100
	}

	if curr.Total == 0 || curr.Idle > curr.Total {
		return 0
	}
	return float64(curr.Total-curr.Idle) / float64(curr.Total) * 100
}

// ParseLinuxMemory parses /proc/meminfo and returns used and total bytes.
// Used excludes free memory, buffers and page cache.
func ParseLinuxMemory(procMeminfo string) (used, total uint64, err error) {
	scanner := bufio.NewScanner(strings.NewReader(procMeminfo))

	var memFree, buffers, cached uint64
	haveTotal, haveFree := false, false

	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		// Values in /proc/meminfo are in kB
		key := strings.TrimSuffix(parts[0], ":")
		val, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			continue
		}
		valBytes := val * 1024

		switch key {
		case "MemTotal":
			total = valBytes
			haveTotal = true
		case "MemFree":
			memFree = valBytes
			haveFree = true
		case "Buffers":
			buffers = valBytes
		case "Cached":
			cached = valBytes
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("error scanning /proc/meminfo: %w", err)
	}

	if !haveTotal || !haveFree {
		return 0, 0, fmt.Errorf("insufficient memory info found in /proc/meminfo")
	}

	reclaimable := memFree + buffers + cached
	if reclaimable >= total {
		return 0, total, nil
	}
	return total - reclaimable, total, nil
}

// ParseLinuxNetwork parses cumulative byte counters from /proc/net/dev.
func ParseLinuxNetwork(procNetDev string) ([]monitor.InterfaceCounters, error) {
	var ifaces []monitor.InterfaceCounters
	scanner := bufio.NewScanner(strings.NewReader(procNetDev))

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// Skip the two header lines
		if lineNum <= 2 {
			continue
		}

		// Format: "  iface: bytes packets errs drop fifo frame compressed multicast | bytes packets..."
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		name := strings.TrimSpace(parts[0])
		fields := strings.Fields(parts[1])

		// Need at least 16 fields (8 receive + 8 transmit)
		if len(fields) < 16 {
			continue
		}

		received, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse received bytes for %s: %w", name, err)
		}

		transmitted, err := strconv.ParseUint(fields[8], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transmitted bytes for %s: %w", name, err)
		}

		ifaces = append(ifaces, monitor.InterfaceCounters{
			Name:        name,
			Received:    received,
			Transmitted: transmitted,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning /proc/net/dev: %w", err)
	}

	return ifaces, nil
}
