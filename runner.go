package chainsim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zero-day-ai/chainsim/catalog"
	"github.com/zero-day-ai/chainsim/chain"
	"github.com/zero-day-ai/chainsim/promise"
)

// DefaultEndCondition is the objective checked when a run does not name
// its own end condition.
const DefaultEndCondition promise.Promise = "objective_exfiltration"

// defaultNOPTactics are the tactic labels treated as having no simulable
// effect when a technique under them provides nothing.
var defaultNOPTactics = []string{"defense_evasion"}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets a custom logger for the runner.
// If not provided, a default stderr logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for the runner.
// If not provided, a noop tracer is used.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Runner) {
		r.tracer = tracer
	}
}

// WithEndCondition sets the promise whose presence in the final pool
// classifies the run as a success.
func WithEndCondition(end promise.Promise) Option {
	return func(r *Runner) {
		r.endCondition = end
	}
}

// WithNOPTactics sets the tactic labels used by the NOP pre-filter.
func WithNOPTactics(tactics ...string) Option {
	return func(r *Runner) {
		r.nopTactics = tactics
	}
}

// WithEmptyProvidesOnly makes an empty provides list the sole NOP
// criterion, ignoring tactics.
func WithEmptyProvidesOnly() Option {
	return func(r *Runner) {
		r.emptyProvidesOnly = true
	}
}

// Runner orchestrates one or more attack chain simulations: bundle
// expansion, NOP stripping, include/exclude handling, the simulation
// itself, and outcome classification. A Runner is safe to reuse across
// runs; each Run call is independent.
type Runner struct {
	logger *slog.Logger
	tracer trace.Tracer

	endCondition      promise.Promise
	nopTactics        []string
	emptyProvidesOnly bool
}

// NewRunner creates a runner with the given options applied over
// defaults: stderr logging, noop tracing, DefaultEndCondition, and
// defense evasion NOP filtering.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger:       slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})),
		tracer:       noop.NewTracerProvider().Tracer("chainsim"),
		endCondition: DefaultEndCondition,
		nopTactics:   defaultNOPTactics,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunInput carries everything one simulation run needs.
type RunInput struct {
	// Catalog is the full technique catalog.
	Catalog catalog.Catalog

	// Bundle is the threat actor's technique bundle.
	Bundle catalog.Bundle

	// Seeds are promises assumed true before any technique fires.
	Seeds []promise.Promise

	// SystemConditions are environment promises assumed true regardless
	// of the bundle (e.g. "poor_security_practices").
	SystemConditions []promise.Promise

	// IncludeTechniques are added to the bundle before simulation.
	IncludeTechniques []string

	// ExcludeTechniques are removed from the bundle before simulation.
	// Entries not present in the bundle are reported, not fatal.
	ExcludeTechniques []string

	// IncludeTools merges techniques inherited from the actor's tools.
	IncludeTools bool
}

// Outcome is the result of one run.
type Outcome struct {
	// RunID uniquely identifies this run.
	RunID string

	// Actor is the bundle name, when the bundle file carried one.
	Actor string

	// Simulation is the engine result.
	Simulation *chain.Simulation

	// RemovedNOPs are the technique ids stripped before simulation,
	// sorted.
	RemovedNOPs []string

	// MissingExcludes are exclude-list entries that were not in the
	// bundle. Reported as warnings; the run continues unaffected.
	MissingExcludes []string

	// EndCondition is the objective the run was checked against.
	EndCondition promise.Promise

	// Success is true if EndCondition is present in the final pool.
	Success bool
}

// Run executes one simulation. Configuration errors (a bundle id missing
// from the catalog, an empty catalog) abort the run; a simulation that
// terminates without reaching the end condition is a normal outcome with
// Success set to false.
func (r *Runner) Run(ctx context.Context, in RunInput) (*Outcome, error) {
	const op = "Runner.Run"

	if in.Catalog == nil {
		return nil, NewValidationError(op, fmt.Errorf("%w: catalog is required", ErrInvalidInput))
	}

	_, span := r.tracer.Start(ctx, "chainsim.run")
	defer span.End()

	techniques := in.Bundle.TechniqueIDs(in.IncludeTools)

	nops := catalog.NOPs(in.Catalog, r.nopTactics, r.emptyProvidesOnly)
	techniques, removed := catalog.StripNOPs(techniques, nops)
	r.logger.Info("removed NOP techniques",
		"count", len(removed),
		"techniques", removed)

	if len(in.IncludeTechniques) > 0 {
		techniques = catalog.Include(techniques, in.IncludeTechniques)
	}

	techniques, missing := catalog.Exclude(techniques, in.ExcludeTechniques)
	for _, id := range missing {
		r.logger.Warn("exclude entry is not in the list of techniques used", "technique", id)
	}

	sim, err := chain.Simulate(in.Seeds, techniques, in.Catalog, in.SystemConditions)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownTechnique) {
			return nil, NewConfigurationError(op, err)
		}
		return nil, NewInternalError(op, fmt.Errorf("%w: %v", ErrSimulationFailed, err))
	}

	outcome := &Outcome{
		RunID:           uuid.NewString(),
		Actor:           in.Bundle.Name,
		Simulation:      sim,
		RemovedNOPs:     removed,
		MissingExcludes: missing,
		EndCondition:    r.endCondition,
		Success:         sim.Reached(r.endCondition),
	}

	r.logger.Info("simulation finished",
		"run_id", outcome.RunID,
		"stages", len(sim.Stages),
		"objectives", sim.Objectives.Len(),
		"success", outcome.Success)

	return outcome, nil
}
