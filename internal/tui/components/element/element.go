// Package element provides a focusable terminal element that widgets can bind
// to through uictl.Host.
package element

import (
	"strconv"

	"github.com/alkime/frostslider/internal/tui/style"
	"github.com/alkime/frostslider/pkg/uictl"
	tea "github.com/charmbracelet/bubbletea"
)

// UnhandledKeyMsg carries a key press that no listener claimed.
// The parent model applies its own default action for it.
type UnhandledKeyMsg struct {
	Key tea.KeyMsg
}

type listener struct {
	id uint64
	fn func(*uictl.KeyEvent)
}

// Element holds text, attributes and key listeners.
// It is shared by pointer between the parent model and the widgets bound to it.
type Element struct {
	id        string
	attrs     map[string]string
	text      string
	focused   bool
	listeners []listener
	nextID    uint64
}

// New creates an empty, unfocusable element.
func New(id string) *Element {
	return &Element{
		id:    id,
		attrs: make(map[string]string),
	}
}

func (e *Element) ID() string {
	return e.id
}

// SetAttribute implements uictl.Host.
func (e *Element) SetAttribute(name, value string) {
	e.attrs[name] = value
}

// Attribute returns the named attribute and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetText implements uictl.Host.
func (e *Element) SetText(text string) {
	e.text = text
}

func (e *Element) Text() string {
	return e.text
}

// AddKeyListener implements uictl.Host.
func (e *Element) AddKeyListener(fn func(*uictl.KeyEvent)) func() {
	id := e.nextID
	e.nextID++
	e.listeners = append(e.listeners, listener{id: id, fn: fn})

	return func() { e.removeListener(id) }
}

func (e *Element) removeListener(id uint64) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns the number of attached key listeners.
func (e *Element) Listeners() int {
	return len(e.listeners)
}

// Focusable reports whether the element is in the focus order, i.e. its
// tabindex is a non-negative integer.
func (e *Element) Focusable() bool {
	v, ok := e.attrs[uictl.AttrTabIndex]
	if !ok {
		return false
	}

	n, err := strconv.Atoi(v)

	return err == nil && n >= 0
}

// Focus gives the element keyboard focus if it is focusable.
func (e *Element) Focus() bool {
	e.focused = e.Focusable()
	return e.focused
}

func (e *Element) Blur() {
	e.focused = false
}

func (e *Element) Focused() bool {
	return e.focused
}

// Dispatch delivers ev to the listeners in the order they were added.
// Listeners removed mid-dispatch still see the current event.
func (e *Element) Dispatch(ev *uictl.KeyEvent) {
	snapshot := append([]listener(nil), e.listeners...)
	for _, l := range snapshot {
		l.fn(ev)
	}
}

// Update routes key presses to listeners while focused. Keys that reach no
// listener, or whose default no listener prevented, come back to the parent
// as an UnhandledKeyMsg.
func (e *Element) Update(msg tea.Msg) (*Element, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}

	if e.focused {
		ev := uictl.NewKeyEvent(keyMsg.String())
		e.Dispatch(ev)

		if ev.DefaultPrevented() {
			return e, nil
		}
	}

	return e, func() tea.Msg {
		return UnhandledKeyMsg{Key: keyMsg}
	}
}

// View renders the element's text inside a border.
func (e *Element) View() string {
	if e.focused {
		return style.ElementFocused.Render(e.text)
	}

	return style.Element.Render(e.text)
}
