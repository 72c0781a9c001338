package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"exifedit/editor"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseBrowse
	PhaseError
)

// Messages for the TUI
type (
	TagsLoadedMsg struct {
		Entries []editor.TagEntry
	}
	ErrorMsg struct {
		Err error
	}
)

// Model is the tag browser: it loads every tag of one image in the
// background and shows the result in a scrollable viewport.
type Model struct {
	image    string
	load     tea.Cmd
	Phase    Phase
	Entries  []editor.TagEntry
	Err      error
	spinner  spinner.Model
	viewport viewport.Model
	Quitting bool
	width    int
	height   int
}

// NewModel creates a browser for the given image; load must produce a
// TagsLoadedMsg or an ErrorMsg.
func NewModel(image string, load tea.Cmd) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		image:    image,
		load:     load,
		Phase:    PhaseLoading,
		spinner:  s,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-6, 3)
		if m.Phase == PhaseBrowse {
			m.viewport.SetContent(renderTagLines(m.Entries, m.width))
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.Quitting = true
			return m, tea.Quit
		}

	case TagsLoadedMsg:
		m.Phase = PhaseBrowse
		m.Entries = msg.Entries
		m.viewport.SetContent(renderTagLines(m.Entries, m.width))
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.Phase == PhaseBrowse {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseLoading:
		b.WriteString(fmt.Sprintf("%s Reading tags...", m.spinner.View()))
	case PhaseBrowse:
		b.WriteString(m.viewport.View())
	case PhaseError:
		b.WriteString(errorStyle.Render("Error: " + m.Err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ scroll · q quit"))
	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("exifedit")
	subtitle := subtitleStyle.Render(m.image)
	count := ""
	if m.Phase == PhaseBrowse {
		count = subtitleStyle.Render(fmt.Sprintf("%d tags", len(m.Entries)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, count)
}

func renderTagLines(entries []editor.TagEntry, width int) string {
	nameWidth := 0
	for _, entry := range entries {
		if len(entry.Name) > nameWidth {
			nameWidth = len(entry.Name)
		}
	}

	var b strings.Builder
	for _, entry := range entries {
		name := tagNameStyle.Render(fmt.Sprintf("%-*s", nameWidth, entry.Name))
		value := entry.ValueString()
		if maxValue := width - nameWidth - 4; maxValue > 3 && len(value) > maxValue {
			value = value[:maxValue-3] + "..."
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", name, tagValueStyle.Render(value)))
	}
	return b.String()
}
