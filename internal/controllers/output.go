package controllers

import (
	"fmt"
	"io"

	"nellis/internal/services"
	"nellis/internal/structures"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// Printer writes console feedback, optionally with ANSI colors.
type Printer struct {
	color bool
}

func NewPrinter(color bool) *Printer {
	return &Printer{color: color}
}

func NewConsolePrinter(conf *structures.Config) *Printer {
	return NewPrinter(conf.Console.Color)
}

func (p *Printer) colorize(color, text string) string {
	if !p.color {
		return text
	}
	return color + text + colorReset
}

func (p *Printer) Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, p.colorize(colorGreen, "✓ "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Error(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, p.colorize(colorRed, "✗ "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, p.colorize(colorYellow, "⚠ "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Heading(w io.Writer, text string) {
	fmt.Fprintln(w, p.colorize(colorBold, text))
}

func (p *Printer) Status(w io.Writer, label string, format string, args ...any) {
	fmt.Fprintf(w, "  %s %s\n", p.colorize(colorBold, label+":"), fmt.Sprintf(format, args...))
}

func (p *Printer) Step(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, p.colorize(colorCyan, "→ "+fmt.Sprintf(format, args...)))
}

// Notifications prints drained notifications in arrival order.
func (p *Printer) Notifications(w io.Writer, items []services.Notification) {
	for _, n := range items {
		if n.Kind == services.NotifyError {
			p.Error(w, "%s", n.Message)
			continue
		}
		p.Success(w, "%s", n.Message)
	}
}
