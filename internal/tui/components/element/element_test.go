package element_test

import (
	"testing"

	"github.com/alkime/frostslider/internal/tui/components/element"
	"github.com/alkime/frostslider/pkg/slider"
	"github.com/alkime/frostslider/pkg/uictl"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoinits // recommend for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var _ uictl.Host = (*element.Element)(nil)

func TestElement_Attributes(t *testing.T) {
	t.Parallel()

	el := element.New("slider")
	assert.Equal(t, "slider", el.ID())

	_, ok := el.Attribute(uictl.AttrTabIndex)
	assert.False(t, ok)
	assert.False(t, el.Focusable())

	el.SetAttribute(uictl.AttrTabIndex, "0")
	v, ok := el.Attribute(uictl.AttrTabIndex)
	require.True(t, ok)
	assert.Equal(t, "0", v)
	assert.True(t, el.Focusable())
}

func TestElement_Focusable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tabindex string
		want     bool
	}{
		{tabindex: "0", want: true},
		{tabindex: "3", want: true},
		{tabindex: "-1", want: false},
		{tabindex: "abc", want: false},
	}

	for _, tt := range tests {
		el := element.New("e")
		el.SetAttribute(uictl.AttrTabIndex, tt.tabindex)
		assert.Equal(t, tt.want, el.Focusable(), "tabindex %q", tt.tabindex)
		assert.Equal(t, tt.want, el.Focus(), "tabindex %q", tt.tabindex)
	}
}

func TestElement_ListenersRunInOrder(t *testing.T) {
	t.Parallel()

	el := element.New("e")

	var order []string
	el.AddKeyListener(func(*uictl.KeyEvent) { order = append(order, "first") })
	removeSecond := el.AddKeyListener(func(*uictl.KeyEvent) { order = append(order, "second") })
	el.AddKeyListener(func(*uictl.KeyEvent) { order = append(order, "third") })
	require.Equal(t, 3, el.Listeners())

	el.Dispatch(uictl.NewKeyEvent("x"))
	assert.Equal(t, []string{"first", "second", "third"}, order)

	removeSecond()
	removeSecond()
	assert.Equal(t, 2, el.Listeners())

	order = nil
	el.Dispatch(uictl.NewKeyEvent("x"))
	assert.Equal(t, []string{"first", "third"}, order)
}

func TestElement_RemoveDuringDispatch(t *testing.T) {
	t.Parallel()

	el := element.New("e")
	calls := 0

	var remove func()
	remove = el.AddKeyListener(func(*uictl.KeyEvent) {
		calls++
		remove()
	})
	el.AddKeyListener(func(*uictl.KeyEvent) { calls++ })

	el.Dispatch(uictl.NewKeyEvent("x"))
	assert.Equal(t, 2, calls)

	el.Dispatch(uictl.NewKeyEvent("x"))
	assert.Equal(t, 3, calls)
}

func TestElement_UpdateUnfocused(t *testing.T) {
	t.Parallel()

	el := element.New("e")
	called := false
	el.AddKeyListener(func(*uictl.KeyEvent) { called = true })

	_, cmd := el.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	assert.False(t, called)

	msg, ok := cmd().(element.UnhandledKeyMsg)
	require.True(t, ok)
	assert.Equal(t, "right", msg.Key.String())
}

func TestElement_UpdateWithSlider(t *testing.T) {
	t.Parallel()

	el := element.New("e")
	s, err := slider.New(el, slider.WithRange(0, 50), slider.WithStep(5))
	require.NoError(t, err)
	require.True(t, el.Focus())

	t.Run("arrow keys are handled", func(t *testing.T) {
		_, cmd := el.Update(tea.KeyMsg{Type: tea.KeyRight})
		assert.Nil(t, cmd)
		_, cmd = el.Update(tea.KeyMsg{Type: tea.KeyUp})
		assert.Nil(t, cmd)

		assert.Equal(t, 10, s.Value())
		assert.Equal(t, "Value: 10", el.Text())
	})

	t.Run("other keys come back unhandled", func(t *testing.T) {
		_, cmd := el.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
		require.NotNil(t, cmd)

		msg, ok := cmd().(element.UnhandledKeyMsg)
		require.True(t, ok)
		assert.Equal(t, "q", msg.Key.String())
		assert.Equal(t, 10, s.Value())
	})

	t.Run("non-key messages are ignored", func(t *testing.T) {
		_, cmd := el.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
		assert.Nil(t, cmd)
	})

	t.Run("blurred element stops delivering", func(t *testing.T) {
		el.Blur()
		assert.False(t, el.Focused())

		_, cmd := el.Update(tea.KeyMsg{Type: tea.KeyRight})
		assert.NotNil(t, cmd)
		assert.Equal(t, 10, s.Value())
	})
}

func TestElement_View(t *testing.T) {
	t.Parallel()

	el := element.New("e")
	el.SetText("Value: 42")

	view := el.View()
	assert.Contains(t, view, "Value: 42")
	assert.Contains(t, view, "╭")

	el.SetAttribute(uictl.AttrTabIndex, "0")
	el.Focus()
	assert.Contains(t, el.View(), "Value: 42")
}
