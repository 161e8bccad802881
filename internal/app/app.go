// Package app runs an edit session, either interactively under bubbletea
// or headless over a raw keystroke stream.
package app

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"editbox/internal/keys"
	"editbox/internal/screen"
	"editbox/internal/textbox"
	"editbox/internal/ui"
)

// DefaultHint is the status line hint for the default bindings.
const DefaultHint = "ctrl+g done · esc cancel"

// Options configures a session.
type Options struct {
	Rows, Cols int
	Mode       textbox.Mode
	// Text seeds the window as if it had been drawn before the edit.
	Text   string
	Box    ui.BoxOptions
	Hint   string
	KeyMap keys.KeyMap
	Logger *log.Logger

	// ProgramOptions are appended to the bubbletea program options.
	ProgramOptions []tea.ProgramOption
}

// Result is the outcome of a finished session.
type Result struct {
	Text string
	// Before is the seeded content as the editor first saw it.
	Before string
}

func (o Options) withDefaults() Options {
	if o.Rows < 1 {
		o.Rows = 1
	}
	if o.Cols < 1 {
		o.Cols = 1
	}
	if len(o.KeyMap.Terminate.Keys()) == 0 {
		o.KeyMap = keys.DefaultKeyMap()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// chanSource feeds the editor from the program's decoded keys.
type chanSource struct {
	ctx  context.Context
	cmds <-chan textbox.Command
}

func (s chanSource) Next() (textbox.Command, error) {
	select {
	case <-s.ctx.Done():
		return textbox.Command{}, textbox.ErrCancelled
	case c := <-s.cmds:
		return c, nil
	}
}

// Run opens the edit box on the terminal and blocks until the user
// terminates or cancels the edit. A cancelled edit returns
// textbox.ErrCancelled.
func Run(ctx context.Context, opts Options) (Result, error) {
	opts = opts.withDefaults()
	grid := screen.New(opts.Rows, opts.Cols)
	grid.Fill(opts.Text)

	g, gctx := errgroup.WithContext(ctx)
	cmds := make(chan textbox.Command, 64)
	done := make(chan struct{})

	ed := textbox.New(grid, chanSource{ctx: gctx, cmds: cmds},
		textbox.WithMode(opts.Mode), textbox.WithLogger(opts.Logger))
	res := Result{Before: ed.String()}

	popts := append([]tea.ProgramOption{tea.WithContext(gctx)}, opts.ProgramOptions...)
	p := tea.NewProgram(newModel(grid, opts, cmds, done), popts...)
	// Update may be blocked handing a command to the editor, so repaints
	// must not wait on the event loop.
	grid.OnRefresh(func() { go p.Send(repaintMsg{}) })

	g.Go(func() error {
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("app: run program: %w", err)
		}
		if m, ok := final.(model); ok && m.cancelled {
			return textbox.ErrCancelled
		}
		select {
		case <-done:
			return nil
		default:
			return textbox.ErrCancelled
		}
	})
	g.Go(func() error {
		text, err := ed.Edit()
		close(done)
		if err != nil {
			return err
		}
		res.Text = text
		p.Send(doneMsg{})
		return nil
	})
	if err := g.Wait(); err != nil {
		opts.Logger.Debug("session ended", "err", err)
		return Result{Before: res.Before}, err
	}
	return res, nil
}

// RunScript drives the editor from raw keystrokes in r without a terminal.
// ESC cancels; running out of input before ^G is an error.
func RunScript(r io.Reader, opts Options) (Result, error) {
	opts = opts.withDefaults()
	grid := screen.New(opts.Rows, opts.Cols)
	grid.Fill(opts.Text)
	ed := textbox.New(grid, keys.NewReaderSource(r),
		textbox.WithMode(opts.Mode), textbox.WithLogger(opts.Logger))
	res := Result{Before: ed.String()}
	text, err := ed.Edit()
	if err != nil {
		return res, err
	}
	res.Text = text
	return res, nil
}
