package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/alkime/frostslider/internal/tui/components/element"
	"github.com/alkime/frostslider/internal/tui/components/gauge"
	"github.com/alkime/frostslider/internal/tui/style"
	"github.com/alkime/frostslider/pkg/slider"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const gaugeWidth = 24

// Options configures the slider the application hosts.
type Options struct {
	Title string
	Min   float64
	Max   float64
	Step  float64
}

// Model is a single-slider application.
type Model struct {
	title   string
	el      *element.Element
	slider  *slider.Slider[float64]
	gauge   gauge.Model
	keys    KeyMap
	help    help.Model
	changes int
}

// New builds the host element, binds a slider to it and gives it focus.
// Slider construction errors are returned unchanged.
func New(opts Options) (*Model, error) {
	m := &Model{
		title: opts.Title,
		el:    element.New("slider"),
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}

	s, err := slider.New(m.el,
		slider.WithRange(opts.Min, opts.Max),
		slider.WithStep(opts.Step),
		slider.WithOnChange(m.recordChange),
		slider.WithKeyMap[float64](m.keys.Slider),
	)
	if err != nil {
		return nil, err
	}

	m.slider = s
	m.gauge = gauge.New(s, gaugeWidth)
	m.el.Focus()

	return m, nil
}

func (m *Model) recordChange(v float64) {
	m.changes++
	slog.Debug("slider value changed", "value", v, "changes", m.changes)
}

// Init returns the initial command.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles all messages.
func (m *Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil

	case tea.KeyMsg:
		// ctrl+c quits even when a listener would claim it
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case element.UnhandledKeyMsg:
		switch {
		case key.Matches(msg.Key, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg.Key, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.el, cmd = m.el.Update(teaMsg)

	return m, cmd
}

// View renders the title, the slider element and its gauge, a change
// counter and help.
func (m *Model) View() string {
	var sb strings.Builder

	if m.title != "" {
		sb.WriteString(style.Title.Render(m.title))
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.el.View())
	sb.WriteString("\n")
	sb.WriteString(m.gauge.View())
	sb.WriteString("\n")
	sb.WriteString(style.Muted.Render(fmt.Sprintf("changes: %d", m.changes)))
	sb.WriteString("\n\n")
	sb.WriteString(style.Help.Render(m.help.View(m.keys)))

	return sb.String()
}

// Value returns the slider's current value.
func (m *Model) Value() float64 {
	return m.slider.Value()
}

// Changes returns how many accepted changes the slider has reported.
func (m *Model) Changes() int {
	return m.changes
}
