package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/moorebrett0/mypet/internal/pet"
	"github.com/moorebrett0/mypet/internal/view"
)

var (
	// ErrStopped is returned once Run has exited.
	ErrStopped = errors.New("session stopped")
	// ErrPetDead is returned for actions and steps on a dead pet. The frame
	// returned alongside it still describes the dead pet.
	ErrPetDead = errors.New("pet is dead")
)

// Config for a session.
type Config struct {
	Name         string
	StepInterval time.Duration // 0 disables automatic steps
	QueueSize    int
	Messages     view.Messages
}

type kind int

const (
	kindCurrent kind = iota
	kindInteract
	kindStep
	kindReset
)

type request struct {
	kind   kind
	action pet.Action
	reply  chan reply
}

type reply struct {
	frame view.Frame
	err   error
}

// Session owns one pet and applies every command and timer tick to it from
// a single goroutine, so the pet itself needs no locking.
type Session struct {
	name         string
	stepInterval time.Duration
	msgs         view.Messages
	onUpdate     func(view.Frame) // called for timer-driven frames

	reqs chan request
	done chan struct{}

	// Owned by the Run goroutine.
	pet    *pet.Pet
	status string
}

// New creates a session with a freshly hatched pet. Call Run to start it.
func New(cfg Config, onUpdate func(view.Frame)) *Session {
	msgs := cfg.Messages
	if msgs == (view.Messages{}) {
		msgs = view.DefaultMessages()
	}
	return &Session{
		name:         cfg.Name,
		stepInterval: cfg.StepInterval,
		msgs:         msgs,
		onUpdate:     onUpdate,
		reqs:         make(chan request, max(cfg.QueueSize, 0)),
		done:         make(chan struct{}),
		pet:          pet.New(),
		status:       msgs.Welcome,
	}
}

// Run processes requests and timer ticks until the context is cancelled.
// It must be called exactly once.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)

	var tick <-chan time.Time
	if s.stepInterval > 0 {
		ticker := time.NewTicker(s.stepInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	slog.Debug("session: running", "step_interval", s.stepInterval)
	for {
		select {
		case <-ctx.Done():
			slog.Debug("session: stopped")
			return nil
		case <-tick:
			s.autoStep()
		case req := <-s.reqs:
			req.reply <- s.handle(req)
		}
	}
}

// Interact applies an owner action.
func (s *Session) Interact(ctx context.Context, a pet.Action) (view.Frame, error) {
	return s.submit(ctx, request{kind: kindInteract, action: a})
}

// Step advances time once.
func (s *Session) Step(ctx context.Context) (view.Frame, error) {
	return s.submit(ctx, request{kind: kindStep})
}

// Reset replaces the pet with a new one. This is the only way out of death.
func (s *Session) Reset(ctx context.Context) (view.Frame, error) {
	return s.submit(ctx, request{kind: kindReset})
}

// Current returns the frame for the pet as it is now.
func (s *Session) Current(ctx context.Context) (view.Frame, error) {
	return s.submit(ctx, request{kind: kindCurrent})
}

func (s *Session) submit(ctx context.Context, req request) (view.Frame, error) {
	req.reply = make(chan reply, 1)

	select {
	case s.reqs <- req:
	case <-s.done:
		return view.Frame{}, ErrStopped
	case <-ctx.Done():
		return view.Frame{}, ctx.Err()
	}

	select {
	case r := <-req.reply:
		return r.frame, r.err
	case <-s.done:
		// Run may have answered just before exiting.
		select {
		case r := <-req.reply:
			return r.frame, r.err
		default:
			return view.Frame{}, ErrStopped
		}
	case <-ctx.Done():
		return view.Frame{}, ctx.Err()
	}
}

func (s *Session) handle(req request) reply {
	switch req.kind {
	case kindInteract:
		if s.pet.IsDead() {
			return reply{frame: s.frame(), err: ErrPetDead}
		}
		before := s.pet.Snapshot()
		if err := s.pet.InteractWith(req.action); err != nil {
			slog.Error("session: interact failed", "action", req.action, "err", err)
			return reply{frame: s.frame(), err: err}
		}
		after := s.pet.Snapshot()
		s.status = s.msgs.AfterAction(after, req.action)
		logTransition(before, after, "action", req.action)

	case kindStep:
		if s.pet.IsDead() {
			return reply{frame: s.frame(), err: ErrPetDead}
		}
		s.step("manual")

	case kindReset:
		s.pet = pet.New()
		s.status = s.msgs.Reset
		slog.Info("session: new pet hatched", "name", s.name)
	}
	return reply{frame: s.frame()}
}

func (s *Session) autoStep() {
	if s.pet.IsDead() {
		return
	}
	s.step("timer")
	if s.onUpdate != nil {
		s.onUpdate(s.frame())
	}
}

func (s *Session) step(source string) {
	before := s.pet.Snapshot()
	s.pet.Step()
	after := s.pet.Snapshot()
	s.status = s.msgs.AfterStep(after)
	logTransition(before, after, "step", source)
}

func (s *Session) frame() view.Frame {
	snap := s.pet.Snapshot()
	return view.NewFrame(s.name, snap, s.msgs.Idle(snap, s.status))
}

func logTransition(before, after pet.Snapshot, cause string, detail any) {
	if before.Mood != after.Mood {
		slog.Debug("session: mood changed", "from", before.Mood, "to", after.Mood, cause, detail)
	}
	if before.State != after.State {
		slog.Debug("session: state changed", "from", before.State, "to", after.State, cause, detail)
	}
	if !before.IsDead() && after.IsDead() {
		slog.Info("session: pet died", "health", after.Health.String(), cause, detail)
	}
}
