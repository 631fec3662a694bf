package theme

import "github.com/charmbracelet/lipgloss"

// Colors holds the shared color palette used across the CLI and TUI.
type Colors struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

// Theme centralizes the styles shared by the check/clean commands and the
// interactive checker.
type Theme struct {
	colors Colors

	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

// Option configures a Theme during construction.
type Option func(*Theme)

// WithColors overrides the color palette.
func WithColors(c Colors) Option {
	return func(t *Theme) { t.colors = c }
}

// New constructs a Theme with the default palette, applying any options.
func New(opts ...Option) Theme {
	t := Theme{
		colors: Colors{
			Primary: lipgloss.Color("63"),
			Muted:   lipgloss.Color("241"),
			Success: lipgloss.Color("42"),
			Error:   lipgloss.Color("196"),
		},
	}
	for _, opt := range opts {
		opt(&t)
	}

	t.title = lipgloss.NewStyle().Bold(true).Foreground(t.colors.Primary)
	t.success = lipgloss.NewStyle().Foreground(t.colors.Success)
	t.failure = lipgloss.NewStyle().Foreground(t.colors.Error)
	t.muted = lipgloss.NewStyle().Foreground(t.colors.Muted)
	return t
}

// Default returns the standard theme.
func Default() Theme {
	return New()
}

// Title styles a heading.
func (t Theme) Title(s string) string { return t.title.Render(s) }

// Success styles a passing verdict.
func (t Theme) Success(s string) string { return t.success.Render("✓ " + s) }

// Failure styles a failing verdict.
func (t Theme) Failure(s string) string { return t.failure.Render("✗ " + s) }

// Muted styles secondary help text.
func (t Theme) Muted(s string) string { return t.muted.Render(s) }
