package scaffold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nextroute-dev/nextroute/internal/interaction"
	"github.com/nextroute-dev/nextroute/internal/project"
	"github.com/nextroute-dev/nextroute/internal/route"
)

// State is a step of a scaffolding run.
type State int

const (
	StateIdle State = iota
	StateDetecting
	StateCollectingInput
	StateValidating
	StatePlanning
	StateWriting
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateIdle:            "idle",
	StateDetecting:       "detecting",
	StateCollectingInput: "collecting-input",
	StateValidating:      "validating",
	StatePlanning:        "planning",
	StateWriting:         "writing",
	StateDone:            "done",
	StateFailed:          "failed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Prompt texts shown while collecting input.
const (
	RoutePrompt  = "Route name"
	RouteExample = "service/view"
	ParamPrompt  = "Parameter name"
	ParamExample = "serviceId"
)

// Notifier is the user feedback channel.
type Notifier interface {
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Error(msg, hint string)
}

// Failure is a terminal, user-visible scaffolding error. It has already been
// reported through the Notifier when Run returns it.
type Failure struct {
	State State
	Err   error
}

func (f *Failure) Error() string { return f.Err.Error() }

func (f *Failure) Unwrap() error { return f.Err }

// Hint suggests how to get past the failure.
func (f *Failure) Hint() string {
	switch {
	case errors.Is(f.Err, project.ErrNotFrameworkProject):
		return "run the command from a Next.js project root (package.json must depend on \"next\") or pass --root"
	case errors.Is(f.Err, project.ErrRoutingRootNotFound):
		return "create an app/ or pages/ directory (optionally under src/) first"
	case errors.Is(f.Err, route.ErrInvalidRouteName):
		return "use letters, digits, \"/\", \"-\" and \"_\", e.g. service/view"
	case errors.Is(f.Err, route.ErrInvalidParamName):
		return "use letters only, e.g. serviceId"
	case errors.Is(f.Err, ErrRouteExists):
		return "remove the existing files or enable overwrite"
	}
	return ""
}

// Scaffolder drives one route generation from detection to the final report.
// A Scaffolder runs a single request at a time and is not safe for
// concurrent use.
type Scaffolder struct {
	Prompter interaction.Prompter
	Notifier Notifier
	FS       FS
	Options  Options
	// DryRun stops after planning; nothing is written.
	DryRun bool
	Logger *slog.Logger

	state State
}

// New creates a Scaffolder writing to the real filesystem.
func New(p interaction.Prompter, n Notifier, opts Options) *Scaffolder {
	return &Scaffolder{
		Prompter: p,
		Notifier: n,
		FS:       OSFS{},
		Options:  opts,
		Logger:   slog.Default(),
	}
}

// State returns the state the last run ended in.
func (s *Scaffolder) State() State { return s.state }

func (s *Scaffolder) enter(next State) {
	s.Logger.Debug("scaffold state", "from", s.state.String(), "to", next.String())
	s.state = next
}

func (s *Scaffolder) fail(err error) error {
	f := &Failure{State: s.state, Err: err}
	s.enter(StateFailed)
	if s.Notifier != nil {
		s.Notifier.Error(err.Error(), f.Hint())
	}
	return f
}

func (s *Scaffolder) cancel() (*Result, error) {
	s.Logger.Debug("scaffold cancelled by user", "state", s.state.String())
	s.enter(StateDone)
	return &Result{Cancelled: true}, nil
}

// Run executes the scaffolding flow for variant v in the project pc.
//
// A user cancellation at any prompt ends the run with a Result whose
// Cancelled field is set, a nil error, and no filesystem changes. Every
// other failure is reported to the Notifier and returned as a *Failure.
func (s *Scaffolder) Run(ctx context.Context, pc *project.Context, v Variant) (*Result, error) {
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	if s.FS == nil {
		s.FS = OSFS{}
	}
	s.state = StateIdle

	s.enter(StateDetecting)
	if err := pc.Check(); err != nil {
		return nil, s.fail(err)
	}

	s.enter(StateCollectingInput)
	rawRoute, cancelled, err := s.ask(RoutePrompt, RouteExample, route.ValidateRouteName)
	if err != nil {
		return nil, s.fail(err)
	}
	if cancelled {
		return s.cancel()
	}

	var rawParam string
	if v.IsDynamic() {
		rawParam, cancelled, err = s.ask(ParamPrompt, ParamExample, route.ValidateParamName)
		if err != nil {
			return nil, s.fail(err)
		}
		if cancelled {
			return s.cancel()
		}
	}

	s.enter(StateValidating)
	if err := route.ValidateRouteName(rawRoute); err != nil {
		return nil, s.fail(err)
	}
	normalized, err := route.Parse(rawRoute)
	if err != nil {
		return nil, s.fail(err)
	}
	if v.IsDynamic() {
		if err := route.ValidateParamName(rawParam); err != nil {
			return nil, s.fail(err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, s.fail(err)
	}

	s.enter(StatePlanning)
	plan, err := BuildPlan(pc.RoutingRoot, Request{Route: normalized, Param: rawParam, Variant: v}, s.Options)
	if err != nil {
		return nil, s.fail(err)
	}
	if err := plan.checkOverwrite(s.FS, s.Options); err != nil {
		return nil, s.fail(err)
	}

	if s.DryRun {
		s.enter(StateDone)
		return &Result{Plan: plan, OutputDir: plan.Destination, DryRun: true}, nil
	}

	s.enter(StateWriting)
	result, err := Apply(plan, s.FS)
	if err != nil {
		return result, s.fail(err)
	}

	s.enter(StateDone)
	if s.Notifier != nil {
		s.Notifier.Success("%s", SuccessMessage(rawRoute, rawParam, v))
		for _, w := range result.Warnings {
			s.Notifier.Warn("%s", w)
		}
	}
	return result, nil
}

// ask prompts for one value. An empty answer or ErrCancelled is reported as
// cancelled rather than as an error. Anything else is returned untouched so
// that Validating sees exactly what the user typed.
func (s *Scaffolder) ask(title, example string, validate interaction.ValidateFunc) (string, bool, error) {
	if s.Prompter == nil {
		return "", true, nil
	}
	answer, err := s.Prompter.Input(title, example, validate)
	if errors.Is(err, interaction.ErrCancelled) {
		return "", true, nil
	}
	if err != nil {
		return "", false, err
	}
	return answer, answer == "", nil
}

// SuccessMessage is the text reported after a route has been written.
func SuccessMessage(rawRoute, param string, v Variant) string {
	if !v.IsDynamic() {
		return fmt.Sprintf("Route %q created!", rawRoute)
	}
	return fmt.Sprintf("Route %q created (%s)!", rawRoute+"/"+route.ParamFolder(param), v.Label())
}
