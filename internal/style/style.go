// Package style provides consistent terminal styling using Lipgloss.
package style

import "github.com/charmbracelet/lipgloss"

var (
	// Success style for positive outcomes
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")). // Green
		Bold(true)

	// Warning style for partial allocations
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")). // Yellow
		Bold(true)

	// Error style for failures
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")). // Red
		Bold(true)

	// Info style for room names
	Info = lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")) // Blue

	// Dim style for ids and rules
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")) // Gray

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().
		Bold(true)

	// Header style for report sections
	Header = lipgloss.NewStyle().
		Bold(true).
		Underline(true)
)

// Prefixes used in front of command results.
var (
	SuccessPrefix = Success.Render("✓")
	WarningPrefix = Warning.Render("⚠")
	ErrorPrefix   = Error.Render("✗")
	ArrowPrefix   = Info.Render("→")
)

// Palette renders text either styled or plain. The zero value is plain.
type Palette struct {
	Color bool
}

func (p Palette) render(s lipgloss.Style, text string) string {
	if !p.Color {
		return text
	}
	return s.Render(text)
}

func (p Palette) Success(text string) string { return p.render(Success, text) }
func (p Palette) Warning(text string) string { return p.render(Warning, text) }
func (p Palette) Error(text string) string   { return p.render(Error, text) }
func (p Palette) Info(text string) string    { return p.render(Info, text) }
func (p Palette) Dim(text string) string     { return p.render(Dim, text) }
func (p Palette) Bold(text string) string    { return p.render(Bold, text) }
func (p Palette) Header(text string) string  { return p.render(Header, text) }

// SuccessPrefix returns the checkmark, styled when color is on.
func (p Palette) SuccessPrefix() string { return p.Success("✓") }

// WarningPrefix returns the warning sign, styled when color is on.
func (p Palette) WarningPrefix() string { return p.Warning("⚠") }

// ErrorPrefix returns the cross, styled when color is on.
func (p Palette) ErrorPrefix() string { return p.Error("✗") }

// ArrowPrefix returns the arrow shown before echoed script lines.
func (p Palette) ArrowPrefix() string { return p.Info("→") }
