package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alkime/frostslider/internal/config"
	"github.com/alkime/frostslider/internal/logger"
	"github.com/alkime/frostslider/internal/tui"
	"github.com/alkime/frostslider/internal/tui/components/element"
	"github.com/alkime/frostslider/pkg/slider"
	tea "github.com/charmbracelet/bubbletea"
)

// CLI defines the frostslider command structure.
type CLI struct {
	// Default TUI command (runs when no subcommand given)
	TUI TUICmd `cmd:"" default:"withargs" help:"Run the slider in the terminal"`

	Press PressCmd `cmd:"" help:"Apply a key sequence to a slider and print each render"`
}

// RangeFlags are the slider bounds and step shared by all commands.
type RangeFlags struct {
	Min  float64 `flag:"" default:"0" env:"SLIDER_MIN" help:"Lower bound"`
	Max  float64 `flag:"" default:"100" env:"SLIDER_MAX" help:"Upper bound"`
	Step float64 `flag:"" default:"1" env:"SLIDER_STEP" help:"Increment per key press"`
}

// TUICmd is the default command that runs the TUI.
type TUICmd struct {
	RangeFlags `embed:""`

	Title string `flag:"" default:"frostslider" help:"Title shown above the slider"`
}

// Run executes the TUI command.
func (c *TUICmd) Run(cfg *config.Config) error {
	// the terminal belongs to bubbletea, so logs go to a file or nowhere
	var w io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()

		w = f
	}

	logger.SetupLogger(cfg, w)

	m, err := tui.New(tui.Options{
		Title: c.Title,
		Min:   c.Min,
		Max:   c.Max,
		Step:  c.Step,
	})
	if err != nil {
		return fmt.Errorf("failed to create slider: %w", err)
	}

	slog.Info("starting slider", "min", c.Min, "max", c.Max, "step", c.Step)

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	fmt.Printf("final value: %v\n", m.Value())

	return nil
}

// PressCmd replays key presses against a slider without a terminal.
type PressCmd struct {
	RangeFlags `embed:""`

	Keys []string `arg:"" help:"Key names, e.g. right up left down"`
}

// Run executes the press command.
func (c *PressCmd) Run(cfg *config.Config) error {
	logger.SetupLogger(cfg, os.Stderr)

	return press(os.Stdout, c.RangeFlags, c.Keys)
}

// press binds a slider to a detached element and writes one line per key.
func press(w io.Writer, flags RangeFlags, keys []string) error {
	el := element.New("slider")

	changed := false
	s, err := slider.New(el,
		slider.WithRange(flags.Min, flags.Max),
		slider.WithStep(flags.Step),
		slider.WithOnChange(func(v float64) {
			changed = true
			slog.Debug("slider value changed", "value", v)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to create slider: %w", err)
	}
	defer s.Dispose()

	el.Focus()
	fmt.Fprintln(w, el.Text())

	for _, k := range keys {
		changed = false
		_, cmd := el.Update(keyMsg(k))

		switch {
		case cmd != nil:
			fmt.Fprintf(w, "%s -> ignored\n", k)
		case changed:
			fmt.Fprintf(w, "%s -> %s (changed)\n", k, el.Text())
		default:
			fmt.Fprintf(w, "%s -> %s (unchanged)\n", k, el.Text())
		}
	}

	return nil
}

// keyMsg builds the bubbletea key message a terminal would send for name.
func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("frostslider"),
		kong.Description("A keyboard-controlled numeric slider."),
		kong.Bind(cfg),
	)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}
