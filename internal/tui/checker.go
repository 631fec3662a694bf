package tui

import (
	"fmt"
	"strings"

	pathtidy "github.com/Digital-Shane/path-tidy"
	"github.com/Digital-Shane/path-tidy/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// platformCycle is the tab order of the interactive platform selector.
var platformCycle = []pathtidy.Platform{
	pathtidy.PlatformUniversal,
	pathtidy.PlatformLinux,
	pathtidy.PlatformWindows,
	pathtidy.PlatformMacOS,
	pathtidy.PlatformPOSIX,
}

// Model is the interactive checker: it validates the typed value live and
// shows the sanitized form the engine would produce.
type Model struct {
	input       textinput.Model
	platform    pathtidy.Platform
	pathMode    bool
	replacement string
	theme       theme.Theme
	width       int
}

// New creates a checker model. The platform and mode seed the initial state
// and remain adjustable from inside the UI.
func New(platform pathtidy.Platform, pathMode bool, replacement string) *Model {
	input := textinput.New()
	input.Placeholder = "type a filename"
	if pathMode {
		input.Placeholder = "type a file path"
	}
	input.Focus()

	return &Model{
		input:       input,
		platform:    platform,
		pathMode:    pathMode,
		replacement: replacement,
		theme:       theme.Default(),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key and resize events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.platform = nextPlatform(m.platform)
			return m, nil
		case tea.KeyCtrlT:
			m.pathMode = !m.pathMode
			if m.pathMode {
				m.input.Placeholder = "type a file path"
			} else {
				m.input.Placeholder = "type a filename"
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the input, the live verdict, and the sanitized suggestion.
func (m *Model) View() string {
	var b strings.Builder

	mode := "filename"
	if m.pathMode {
		mode = "file path"
	}
	b.WriteString(m.theme.Title(fmt.Sprintf("path-tidy · %s · %s", mode, m.platform)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.verdict())
	b.WriteString("\n\n")
	b.WriteString(m.theme.Muted("tab: platform · ctrl+t: name/path · esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) verdict() string {
	value := m.input.Value()
	if value == "" {
		return m.theme.Muted("waiting for input")
	}

	var err error
	if m.pathMode {
		err = pathtidy.ValidateFilepath(value, pathtidy.WithPlatform(m.platform))
	} else {
		err = pathtidy.ValidateFilename(value, pathtidy.WithPlatform(m.platform))
	}
	if err == nil {
		return m.theme.Success(fmt.Sprintf("legal on %s", m.platform))
	}

	lines := []string{m.theme.Failure(err.Error())}
	if sanitized, serr := m.sanitize(value); serr == nil && sanitized != value {
		lines = append(lines, m.theme.Muted("suggestion: "+sanitized))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) sanitize(value string) (string, error) {
	if m.pathMode {
		return pathtidy.SanitizeFilepath(value, m.replacement, pathtidy.WithPlatform(m.platform))
	}
	return pathtidy.SanitizeFilename(value, m.replacement, pathtidy.WithPlatform(m.platform))
}

func nextPlatform(current pathtidy.Platform) pathtidy.Platform {
	for i, p := range platformCycle {
		if p == current {
			return platformCycle[(i+1)%len(platformCycle)]
		}
	}
	return platformCycle[0]
}
