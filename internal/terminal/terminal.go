package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/moorebrett0/mypet/internal/pet"
	"github.com/moorebrett0/mypet/internal/session"
	"github.com/moorebrett0/mypet/internal/view"
)

// Session is the part of session.Session the terminal drives.
type Session interface {
	Interact(ctx context.Context, a pet.Action) (view.Frame, error)
	Step(ctx context.Context) (view.Frame, error)
	Reset(ctx context.Context) (view.Frame, error)
	Current(ctx context.Context) (view.Frame, error)
}

const (
	helpText = `  commands:
    feed   (f)  fill the belly
    play   (p)  keep it company
    clean  (c)  give it a bath
    sleep  (s)  put it to bed, or wake it up
    step   (n)  let some time pass
    status      look at your pet
    reset       hatch a new pet
    quit   (q)  leave`
	unknownHint = "  hmm, try feed, play, clean, sleep or step (help for more)"
	deadHint    = "  your pet can't do that anymore. type reset to hatch a new one."
	goodbye     = "  bye!"
)

// Terminal is a line-oriented front end: one command per line in, one
// rendered frame per command out.
type Terminal struct {
	in      io.Reader
	session Session
	opts    view.RenderOptions

	mu   sync.Mutex // guards out and last
	out  io.Writer
	last view.Frame
}

func New(in io.Reader, out io.Writer, s Session, opts view.RenderOptions) *Terminal {
	return &Terminal{
		in:      in,
		out:     out,
		session: s,
		opts:    opts,
	}
}

// Run shows the current pet and then executes commands read from the input
// until quit, end of input, or context cancellation.
func (t *Terminal) Run(ctx context.Context) error {
	f, err := t.session.Current(ctx)
	if err != nil {
		return fmt.Errorf("loading pet: %w", err)
	}
	t.Show(f)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go readLines(ctx, t.in, lines, readErr)

	for {
		t.write("> ")
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			t.write("\n")
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		case line := <-lines:
			res, err := t.exec(ctx, ParseCommand(line))
			if err != nil {
				return err
			}
			t.print(res)
			if res.quit {
				return nil
			}
		}
	}
}

// RunScript executes whitespace-separated command tokens in order. Every
// frame is shown unless quiet is set, in which case only the final one is.
// An unrecognised token stops the script with an error.
func (t *Terminal) RunScript(ctx context.Context, tokens []string, quiet bool) error {
	f, err := t.session.Current(ctx)
	if err != nil {
		return fmt.Errorf("loading pet: %w", err)
	}
	t.setLast(f)

	for _, tok := range tokens {
		cmd := ParseCommand(tok)
		if cmd == CmdUnknown {
			return fmt.Errorf("unknown command %q", tok)
		}
		res, err := t.exec(ctx, cmd)
		if err != nil {
			return err
		}
		if !quiet {
			t.print(res)
		}
		if res.quit {
			break
		}
	}

	if quiet {
		t.Show(t.Last())
	}
	return nil
}

// Show renders f and remembers it as the latest frame. Safe to call from
// the session's timer goroutine.
func (t *Terminal) Show(f view.Frame) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = f
	fmt.Fprint(t.out, view.Render(f, t.opts))
}

// Last returns the most recent frame.
func (t *Terminal) Last() view.Frame {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

type result struct {
	frame *view.Frame
	note  string
	quit  bool
}

func (t *Terminal) exec(ctx context.Context, cmd Command) (result, error) {
	if !cmd.AllowedWhenDead() && t.Last().Dead {
		return result{note: deadHint}, nil
	}

	var (
		f   view.Frame
		err error
	)
	switch cmd {
	case CmdQuit:
		return result{note: goodbye, quit: true}, nil
	case CmdHelp:
		return result{note: helpText}, nil
	case CmdUnknown:
		return result{note: unknownHint}, nil
	case CmdStatus:
		f, err = t.session.Current(ctx)
	case CmdReset:
		f, err = t.session.Reset(ctx)
	case CmdStep:
		f, err = t.session.Step(ctx)
	default:
		a, _ := cmd.Action()
		f, err = t.session.Interact(ctx, a)
	}

	switch {
	case errors.Is(err, session.ErrPetDead):
		// The timer got there first.
		t.setLast(f)
		return result{frame: &f, note: deadHint}, nil
	case err != nil:
		return result{}, fmt.Errorf("%s: %w", cmd, err)
	}

	t.setLast(f)
	slog.Debug("terminal: command", "cmd", cmd, "mood", f.Mood, "state", f.State)
	return result{frame: &f}, nil
}

func (t *Terminal) print(r result) {
	if r.frame != nil {
		t.Show(*r.frame)
	}
	if r.note != "" {
		t.write(r.note + "\n")
	}
}

func (t *Terminal) setLast(f view.Frame) {
	t.mu.Lock()
	t.last = f
	t.mu.Unlock()
}

func (t *Terminal) write(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprint(t.out, s)
}

// readLines feeds lines to out until the input ends. A nil error on errc
// means a clean end of input.
func readLines(ctx context.Context, in io.Reader, out chan<- string, errc chan<- error) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case out <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	errc <- scanner.Err()
}
