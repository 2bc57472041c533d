package monitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	psnet "github.com/shirou/gopsutil/v4/net"
)

// Provider yields raw host metrics on demand. Every query is synchronous and
// independent; a failure in one does not affect the others.
type Provider interface {
	// CPUPercent returns overall processor utilization on a 0-100 scale.
	CPUPercent(ctx context.Context) (float64, error)
	// Memory returns used and total physical memory in bytes.
	Memory(ctx context.Context) (used, total uint64, err error)
	// Interfaces returns cumulative byte counters for every network interface.
	Interfaces(ctx context.Context) ([]InterfaceCounters, error)
}

// SystemProvider reads local host metrics through gopsutil.
type SystemProvider struct{}

// NewSystemProvider creates a gopsutil-backed provider for the local host.
func NewSystemProvider() *SystemProvider {
	return &SystemProvider{}
}

// CPUPercent returns utilization since the previous call (gopsutil keeps the
// last reading), so a steady tick yields per-tick utilization.
func (p *SystemProvider) CPUPercent(ctx context.Context) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, fmt.Errorf("reading cpu usage: %w", err)
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("reading cpu usage: no aggregate value reported")
	}
	return percents[0], nil
}

func (p *SystemProvider) Memory(ctx context.Context) (used, total uint64, err error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("reading memory usage: %w", err)
	}
	return vm.Used, vm.Total, nil
}

func (p *SystemProvider) Interfaces(ctx context.Context) ([]InterfaceCounters, error) {
	stats, err := psnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("reading network counters: %w", err)
	}

	ifaces := make([]InterfaceCounters, 0, len(stats))
	for _, s := range stats {
		ifaces = append(ifaces, InterfaceCounters{
			Name:        s.Name,
			Received:    s.BytesRecv,
			Transmitted: s.BytesSent,
		})
	}
	return ifaces, nil
}

// FallbackProvider answers each query from primary and, only when that
// query fails, from secondary.
type FallbackProvider struct {
	primary   Provider
	secondary Provider
}

// NewFallbackProvider chains two providers. A nil secondary makes it a
// pass-through to primary.
func NewFallbackProvider(primary, secondary Provider) *FallbackProvider {
	return &FallbackProvider{primary: primary, secondary: secondary}
}

func (p *FallbackProvider) CPUPercent(ctx context.Context) (float64, error) {
	v, err := p.primary.CPUPercent(ctx)
	if err == nil || p.secondary == nil {
		return v, err
	}
	v, err2 := p.secondary.CPUPercent(ctx)
	if err2 != nil {
		return 0, errors.Join(err, err2)
	}
	return v, nil
}

func (p *FallbackProvider) Memory(ctx context.Context) (used, total uint64, err error) {
	used, total, err = p.primary.Memory(ctx)
	if err == nil || p.secondary == nil {
		return used, total, err
	}
	used, total, err2 := p.secondary.Memory(ctx)
	if err2 != nil {
		return 0, 0, errors.Join(err, err2)
	}
	return used, total, nil
}

func (p *FallbackProvider) Interfaces(ctx context.Context) ([]InterfaceCounters, error) {
	ifaces, err := p.primary.Interfaces(ctx)
	if err == nil || p.secondary == nil {
		return ifaces, err
	}
	ifaces, err2 := p.secondary.Interfaces(ctx)
	if err2 != nil {
		return nil, errors.Join(err, err2)
	}
	return ifaces, nil
}

var (
	_ Provider = (*SystemProvider)(nil)
	_ Provider = (*FallbackProvider)(nil)
)
