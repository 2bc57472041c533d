package monitor

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette
const (
	ColorBorder = lipgloss.Color("#2A2A4A")

	// Semantic colors for metrics
	ColorHealthy  = lipgloss.Color("#39FF14")
	ColorWarning  = lipgloss.Color("#FFAA00")
	ColorCritical = lipgloss.Color("#FF0055")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	// Per-gauge colors use the terminal's own ANSI palette
	ColorCPU      = lipgloss.Color("3") // yellow
	ColorMemory   = lipgloss.Color("2") // green
	ColorDownload = lipgloss.Color("6") // cyan
	ColorUpload   = lipgloss.Color("5") // magenta
)

// Thresholds for metric severity levels
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

// Layout
const (
	marginVertical   = 1
	marginHorizontal = 2
	defaultWidth     = 80

	// border + padding on each side of a gauge box
	gaugeChrome = 4

	defaultBarWidth = defaultWidth - 2*marginHorizontal - gaugeChrome
)

type gaugeKind int

const (
	gaugeCPU gaugeKind = iota
	gaugeMemory
	gaugeDownload
	gaugeUpload

	gaugeCount
)

type gaugeDef struct {
	Kind  gaugeKind
	Title string
	Color lipgloss.Color
}

// gaugeDefs lists the gauges top to bottom.
var gaugeDefs = [gaugeCount]gaugeDef{
	{Kind: gaugeCPU, Title: "CPU Usage", Color: ColorCPU},
	{Kind: gaugeMemory, Title: "Memory Usage", Color: ColorMemory},
	{Kind: gaugeDownload, Title: "Download (KB/s)", Color: ColorDownload},
	{Kind: gaugeUpload, Title: "Upload (KB/s)", Color: ColorUpload},
}

// Base styles for the dashboard
var (
	DashboardStyle = lipgloss.NewStyle().
			Margin(marginVertical, marginHorizontal)

	GaugeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	DetailStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)
)

// TitleStyle returns the bold title style for a gauge color.
func TitleStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// MetricColor returns the appropriate color for a percentage-based metric.
// Uses threshold-based coloring: green < 70%, yellow 70-90%, red >= 90%.
func MetricColor(percent float64) lipgloss.Color {
	switch {
	case percent >= CriticalThreshold:
		return ColorCritical
	case percent >= WarningThreshold:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// MetricStyle returns a style with the appropriate foreground color for the metric.
func MetricStyle(percent float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(MetricColor(percent))
}

// newGaugeBar builds a static bar in a single color. The percentage is
// rendered next to the title instead.
func newGaugeBar(color lipgloss.Color, width int) progress.Model {
	return progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithFillCharacters('█', '░'),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
}
