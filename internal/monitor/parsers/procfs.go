package parsers

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/rileyhilliard/sysgauge/internal/monitor"
)

// DefaultProcRoot is where Linux mounts procfs.
const DefaultProcRoot = "/proc"

// ProcProvider reads metrics straight from a procfs mount. It backs up the
// gopsutil provider on Linux hosts where gopsutil cannot read a metric.
type ProcProvider struct {
	root string

	mu      sync.Mutex
	prevCPU *CPUJiffies
}

// NewProcProvider creates a provider rooted at root (usually DefaultProcRoot).
func NewProcProvider(root string) *ProcProvider {
	if root == "" {
		root = DefaultProcRoot
	}
	return &ProcProvider{root: root}
}

// CPUPercent returns utilization since the previous call. The first call
// reports the average since boot.
func (p *ProcProvider) CPUPercent(ctx context.Context) (float64, error) {
	raw, err := p.read(ctx, "stat")
	if err != nil {
		return 0, err
	}

	curr, err := ParseLinuxCPU(raw)
	if err != nil {
		return 0, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	pct := BusyPercent(p.prevCPU, curr)
	p.prevCPU = &curr
	return pct, nil
}

func (p *ProcProvider) Memory(ctx context.Context) (used, total uint64, err error) {
	raw, err := p.read(ctx, "meminfo")
	if err != nil {
		return 0, 0, err
	}
	return ParseLinuxMemory(raw)
}

func (p *ProcProvider) Interfaces(ctx context.Context) ([]monitor.InterfaceCounters, error) {
	raw, err := p.read(ctx, filepath.Join("net", "dev"))
	if err != nil {
		return nil, err
	}
	return ParseLinuxNetwork(raw)
}

func (p *ProcProvider) read(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(p.root, name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

var _ monitor.Provider = (*ProcProvider)(nil)
