// Package ui renders w3tokens CLI output with lipgloss.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	green  = lipgloss.Color("#00D26A")
	amber  = lipgloss.Color("#FFB800")
	red    = lipgloss.Color("#FF4444")
	cyan   = lipgloss.Color("#00B4D8")
	gray   = lipgloss.Color("#555555")
	navy   = lipgloss.Color("#1E3A5F")
	violet = lipgloss.Color("#9B5DE5")
	pink   = lipgloss.Color("#F15BB5")
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(green).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(amber).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(red).Bold(true)
	addrStyle   = lipgloss.NewStyle().Foreground(cyan)
	valStyle    = lipgloss.NewStyle().Bold(true)
	metaStyle   = lipgloss.NewStyle().Foreground(gray)
	headerStyle = lipgloss.NewStyle().Foreground(pink).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(violet).Bold(true)
	blockStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(navy).
			Padding(0, 1)
)

// Success marks a valid or matched result.
func Success(msg string) string { return okStyle.Render("✓ " + msg) }

// Warn marks something skipped, such as a subscription owned by another connector.
func Warn(msg string) string { return warnStyle.Render("⚠ " + msg) }

// Err marks an invalid result.
func Err(msg string) string { return errStyle.Render("✗ " + msg) }

// Addr formats a contract or account address.
func Addr(a string) string { return addrStyle.Render(a) }

// Val formats a value such as a locator, schema or selector.
func Val(v string) string { return valStyle.Render(v) }

// Meta formats secondary text: labels, placeholders and separators.
func Meta(m string) string { return metaStyle.Render(m) }

// Title formats the heading of a block or table.
func Title(t string) string { return titleStyle.Render(t) }

// Locator highlights the values of a packed pool locator, leaving keys and
// separators dim. The text is unchanged when colors are off.
func Locator(l string) string {
	fields := strings.Split(l, "&")
	for i, f := range fields {
		k, v, ok := strings.Cut(f, "=")
		if !ok {
			fields[i] = Val(f)
			continue
		}
		if k == "address" {
			v = Addr(v)
		} else {
			v = Val(v)
		}
		fields[i] = Meta(k+"=") + v
	}
	return strings.Join(fields, Meta("&"))
}
