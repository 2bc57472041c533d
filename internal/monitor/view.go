package monitor

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// renderDashboard renders the four gauges stacked in equal slices, then the footer.
func (m Model) renderDashboard() string {
	boxes := make([]string, 0, gaugeCount)
	for i, g := range gaugeDefs {
		boxes = append(boxes, m.renderGauge(i, g))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, boxes...)
	return DashboardStyle.Render(body + "\n" + m.renderFooter())
}

// renderGauge renders one titled box holding a bar.
func (m Model) renderGauge(i int, g gaugeDef) string {
	value := m.gaugeValue(g.Kind)

	title := TitleStyle(g.Color).Render(g.Title)
	if detail := m.gaugeDetail(g.Kind); detail != "" {
		title += "  " + DetailStyle.Render(detail)
	}
	pct := MetricStyle(float64(value)).Render(fmt.Sprintf("%3d%%", value))

	contentWidth := m.barWidth()
	gap := contentWidth - lipgloss.Width(title) - lipgloss.Width(pct)
	if gap < 1 {
		gap = 1
	}
	header := title + strings.Repeat(" ", gap) + pct

	bar := m.bars[i].ViewAs(float64(value) / 100)

	return GaugeStyle.
		Width(contentWidth + 2).
		Height(m.gaugeHeight()).
		Render(header + "\n" + bar)
}

func (m Model) gaugeValue(kind gaugeKind) int {
	switch kind {
	case gaugeCPU:
		return m.gauges.CPU
	case gaugeMemory:
		return m.gauges.Memory
	case gaugeDownload:
		return m.gauges.Download
	case gaugeUpload:
		return m.gauges.Upload
	}
	return 0
}

// gaugeDetail returns the human-readable figure shown beside a gauge title.
func (m Model) gaugeDetail(kind gaugeKind) string {
	switch kind {
	case gaugeMemory:
		if m.snapshot.MemoryTotal == 0 {
			return ""
		}
		return humanize.IBytes(m.snapshot.MemoryUsed) + " / " + humanize.IBytes(m.snapshot.MemoryTotal)
	case gaugeDownload:
		return FormatRate(m.snapshot.DownloadBytes, m.interval.Seconds())
	case gaugeUpload:
		return FormatRate(m.snapshot.UploadBytes, m.interval.Seconds())
	}
	return ""
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	return FooterStyle.Render("q quit")
}

// barWidth is the inner width of a gauge box.
func (m Model) barWidth() int {
	if m.width == 0 {
		return defaultBarWidth
	}
	w := m.width - 2*marginHorizontal - gaugeChrome
	if w < 1 {
		return 1
	}
	return w
}

// gaugeHeight splits the rows left after margins and footer into four
// equal slices. Unknown terminal size gets the minimum: title and bar.
func (m Model) gaugeHeight() int {
	const minHeight = 2
	if m.height == 0 {
		return minHeight
	}
	avail := m.height - 2*marginVertical - 1
	h := avail/int(gaugeCount) - 2 // top and bottom border
	if h < minHeight {
		return minHeight
	}
	return h
}

// FormatRate formats bytes moved during one tick of the given length as a
// per-second rate.
func FormatRate(bytes uint64, seconds float64) string {
	if seconds <= 0 {
		seconds = 1
	}
	rate := float64(bytes) / seconds
	if rate >= math.MaxUint64 {
		return humanize.IBytes(math.MaxUint64) + "/s"
	}
	return humanize.IBytes(uint64(rate)) + "/s"
}
