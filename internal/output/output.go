// Package output holds the CLI's terminal rendering helpers: shared
// lipgloss styles, duration formatting, usage bars, and the y/N prompt.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared styles. ANSI-16 colors so output degrades sanely everywhere.
var (
	Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	OK     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	Warn   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	Time   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	Title  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	Tag    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	Dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	barFilled = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	barEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// BarWidth is the usage bar's cell count in list output.
const BarWidth = 40

// Bar renders a usage bar scaled against max.
func Bar(usage, max uint64) string {
	filled := barCells(usage, max)
	return barFilled.Render(strings.Repeat("█", filled)) +
		barEmpty.Render(strings.Repeat("░", BarWidth-filled))
}

func barCells(usage, max uint64) int {
	if max == 0 {
		return 0
	}
	cells := int(float64(usage) / float64(max) * BarWidth)
	if cells > BarWidth {
		cells = BarWidth
	}
	return cells
}

// Uptime renders seconds as "2d 5h 30m 45s", starting at the largest
// non-zero unit. Zero is "0s".
func Uptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, secs)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

// Confirm prints the prompt and reads one line from in. Only "y" or "yes",
// case-insensitively, counts as consent.
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
