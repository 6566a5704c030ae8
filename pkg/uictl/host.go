package uictl

// AttrTabIndex is the attribute that puts a host in the keyboard focus order.
const AttrTabIndex = "tabindex"

// KeyEvent is a single key press delivered to a Host's listeners.
// Key names follow bubbletea's KeyMsg.String() form ("right", "up", "q").
type KeyEvent struct {
	key              string
	defaultPrevented bool
}

// NewKeyEvent creates a key event for the named key.
func NewKeyEvent(key string) *KeyEvent {
	return &KeyEvent{key: key}
}

// String returns the key name. It lets a KeyEvent be matched with key.Matches.
func (e KeyEvent) String() string {
	return e.key
}

// PreventDefault tells the host not to apply its own handling for this key.
func (e *KeyEvent) PreventDefault() {
	e.defaultPrevented = true
}

func (e KeyEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Host is the element a widget binds to and renders into.
// The widget never owns the host's lifecycle.
type Host interface {
	SetAttribute(name, value string)
	SetText(text string)
	// AddKeyListener registers fn for key events. Calling remove detaches it.
	AddKeyListener(fn func(*KeyEvent)) (remove func())
}
