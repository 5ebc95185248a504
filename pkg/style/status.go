// Package style centralizes terminal output: status glyphs, message
// printers and the verifier summary table. Color is disabled automatically
// when stdout is not a terminal.
package style

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Status types for steps and checks
type Status string

const (
	StatusSuccess Status = "success" // Installed/linked successfully
	StatusWarning Status = "warning" // Best-effort step failed or skipped
	StatusError   Status = "error"   // Fatal condition
	StatusInfo    Status = "info"    // Neutral progress notice
)

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		pterm.DisableColor()
	}
}

// Glyph returns the status glyph for a given status
func Glyph(status Status) string {
	switch status {
	case StatusSuccess:
		return "✓"
	case StatusWarning:
		return "!"
	case StatusError:
		return "✗"
	default:
		return "•"
	}
}

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusSuccess:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusWarning:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgCyan)
	}
}

// Step prints a single status line for an installer/verifier step.
func Step(status Status, message string) {
	pterm.Printf("%s %s\n", StatusStyle(status).Sprint(Glyph(status)), message)
}

// Stepf is Step with formatting.
func Stepf(status Status, format string, args ...interface{}) {
	Step(status, pterm.Sprintf(format, args...))
}

// Header prints a section header.
func Header(title string) {
	pterm.DefaultSection.Println(title)
}
