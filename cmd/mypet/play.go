package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/moorebrett0/mypet/internal/session"
	"github.com/moorebrett0/mypet/internal/terminal"
	"github.com/moorebrett0/mypet/internal/view"
)

var quiet bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Look after your pet interactively (default)",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

var runCmd = &cobra.Command{
	Use:   "run COMMAND...",
	Short: "Apply a list of commands to a new pet and print the result",
	Long: `Run applies commands such as feed, play, clean, sleep and step to a freshly
hatched pet, in order. The clock never ticks on its own, so the same commands
always produce the same pet.`,
	Example: `  mypet run step step feed
  mypet run --quiet "play clean step"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScript,
}

func init() {
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the final frame")
}

func renderOptions() view.RenderOptions {
	return view.RenderOptions{BarWidth: cfg.Display.BarWidth, Emoji: cfg.Display.Emoji}
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var term *terminal.Terminal
	sess := session.New(session.Config{
		Name:         cfg.Pet.Name,
		StepInterval: cfg.Clock.StepInterval,
		QueueSize:    cfg.Clock.QueueSize,
	}, func(f view.Frame) {
		term.Show(f)
	})
	term = terminal.New(os.Stdin, os.Stdout, sess, renderOptions())

	return runWith(ctx, sess, func(ctx context.Context) error {
		return term.Run(ctx)
	})
}

func runScript(cmd *cobra.Command, args []string) error {
	var tokens []string
	for _, arg := range args {
		tokens = append(tokens, strings.Fields(arg)...)
	}

	sess := session.New(session.Config{
		Name:      cfg.Pet.Name,
		QueueSize: cfg.Clock.QueueSize,
	}, nil)
	term := terminal.New(os.Stdin, os.Stdout, sess, renderOptions())

	return runWith(cmd.Context(), sess, func(ctx context.Context) error {
		return term.RunScript(ctx, tokens, quiet)
	})
}

// runWith runs the session loop next to a front end and stops the session
// once the front end returns.
func runWith(ctx context.Context, sess *session.Session, front func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	frontCtx, cancel := context.WithCancel(gctx)

	g.Go(func() error {
		if err := sess.Run(frontCtx); err != nil {
			return fmt.Errorf("session: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		defer cancel()
		return front(frontCtx)
	})

	return g.Wait()
}
