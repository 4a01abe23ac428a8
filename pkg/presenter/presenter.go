// Package presenter provides consistent user-facing CLI output: success,
// warning, error, and informational messages with color support and a quiet
// mode for scripted use.
package presenter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/agentctl/agentctl/pkg/llm"
)

// ColorMode controls whether output is colorized.
type ColorMode int

const (
	// ColorAuto lets the color package detect terminal capabilities.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output.
	ColorAlways
	// ColorNever disables colored output.
	ColorNever
)

// TerminalPresenter writes formatted messages to a terminal.
type TerminalPresenter struct {
	output      io.Writer
	errorOutput io.Writer
	quiet       bool
}

// New creates a TerminalPresenter writing to stdout/stderr.
func New() *TerminalPresenter {
	return NewWithOptions(os.Stdout, os.Stderr, detectColorMode())
}

// NewWithOptions creates a TerminalPresenter with explicit streams and color mode.
func NewWithOptions(output, errorOutput io.Writer, mode ColorMode) *TerminalPresenter {
	switch mode {
	case ColorAlways:
		color.NoColor = false
	case ColorNever:
		color.NoColor = true
	}
	return &TerminalPresenter{output: output, errorOutput: errorOutput}
}

func detectColorMode() ColorMode {
	if os.Getenv("NO_COLOR") != "" {
		return ColorNever
	}
	switch os.Getenv("AGENTCTL_COLOR") {
	case "always", "force":
		return ColorAlways
	case "never", "off":
		return ColorNever
	}
	return ColorAuto
}

// SetQuiet suppresses everything except errors.
func (p *TerminalPresenter) SetQuiet(quiet bool) {
	p.quiet = quiet
}

// IsQuiet reports whether quiet mode is enabled.
func (p *TerminalPresenter) IsQuiet() bool {
	return p.quiet
}

// Error displays an error with optional context to stderr. Errors are shown
// even in quiet mode.
func (p *TerminalPresenter) Error(err error, context string) {
	if err == nil {
		return
	}
	c := color.New(color.FgRed, color.Bold)
	if context != "" {
		c.Fprintf(p.errorOutput, "[ERROR] %s: %v\n", context, err)
	} else {
		c.Fprintf(p.errorOutput, "[ERROR] %v\n", err)
	}
}

// Success displays a success message.
func (p *TerminalPresenter) Success(message string) {
	if p.quiet {
		return
	}
	color.New(color.FgGreen, color.Bold).Fprintf(p.output, "✓ %s\n", message)
}

// Warning displays a warning message.
func (p *TerminalPresenter) Warning(message string) {
	if p.quiet {
		return
	}
	color.New(color.FgYellow, color.Bold).Fprintf(p.output, "⚠ %s\n", message)
}

// Info displays an informational message.
func (p *TerminalPresenter) Info(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.output, "%s\n", message)
}

// Section displays an underlined section header.
func (p *TerminalPresenter) Section(title string) {
	if p.quiet {
		return
	}
	c := color.New(color.Bold)
	c.Fprintf(p.output, "%s\n", title)
	c.Fprintf(p.output, "%s\n", strings.Repeat("-", len(title)))
}

// Stats displays token usage for a completed request.
func (p *TerminalPresenter) Stats(usage llm.Usage) {
	if p.quiet || usage.TotalUnits == 0 {
		return
	}
	color.New(color.FgCyan, color.Bold).Fprintf(p.output,
		"[Usage] Prompt: %d | Completion: %d | Total: %d\n",
		usage.PromptUnits, usage.CompletionUnits, usage.TotalUnits)
}

var defaultPresenter = New()

// Error displays an error via the default presenter.
func Error(err error, context string) { defaultPresenter.Error(err, context) }

// Success displays a success message via the default presenter.
func Success(message string) { defaultPresenter.Success(message) }

// Warning displays a warning message via the default presenter.
func Warning(message string) { defaultPresenter.Warning(message) }

// Info displays an informational message via the default presenter.
func Info(message string) { defaultPresenter.Info(message) }

// Section displays a section header via the default presenter.
func Section(title string) { defaultPresenter.Section(title) }

// Stats displays usage statistics via the default presenter.
func Stats(usage llm.Usage) { defaultPresenter.Stats(usage) }

// SetQuiet toggles quiet mode on the default presenter.
func SetQuiet(quiet bool) { defaultPresenter.SetQuiet(quiet) }
