// Package suite holds the experiment registry and the loop that runs
// experiments in dependency order, feeding results to reporters.
package suite

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fijjas/go-experiments/pkg/bench"
	"github.com/fijjas/go-experiments/pkg/bench/report"
)

var (
	ErrDuplicateExperiment = errors.New("experiment name already registered")
	ErrUnknownExperiment   = errors.New("unknown experiment")
	ErrDependencyCycle     = errors.New("experiment requirements form a cycle")
)

// Experiment is one registered probe: a named group of measured cases.
type Experiment struct {
	Name string
	Doc  string
	// Requires lists experiments whose numbers this experiment's findings
	// are read against. Required experiments always run first.
	Requires []string
	Run      func(ctx context.Context, runner *bench.Runner) ([]bench.Result, error)
}

// Registry is an ordered, name-unique collection of experiments.
type Registry struct {
	order  []string
	byName map[string]Experiment
}

// NewRegistry builds a registry, rejecting duplicate names.
func NewRegistry(experiments ...Experiment) (*Registry, error) {
	reg := &Registry{byName: make(map[string]Experiment, len(experiments))}
	for _, exp := range experiments {
		if _, ok := reg.byName[exp.Name]; ok {
			return nil, errors.Wrap(ErrDuplicateExperiment, exp.Name)
		}
		reg.byName[exp.Name] = exp
		reg.order = append(reg.order, exp.Name)
	}

	return reg, nil
}

// Get returns an experiment by name.
func (r *Registry) Get(name string) (Experiment, bool) {
	exp, ok := r.byName[name]

	return exp, ok
}

// Names returns experiment names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)

	return names
}

// Suite wires a registry to a bench runner and a set of reporters.
type Suite struct {
	registry  *Registry
	runner    *bench.Runner
	reporters []report.Reporter
	log       *zap.Logger
}

// Option configures a suite.
type Option func(s *Suite)

// WithReporter adds a reporter fed after every experiment.
func WithReporter(rep report.Reporter) Option {
	return func(s *Suite) {
		s.reporters = append(s.reporters, rep)
	}
}

// WithLogger sets the suite logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Suite) {
		s.log = log
	}
}

// New creates a suite.
func New(registry *Registry, runner *bench.Runner, opts ...Option) *Suite {
	s := &Suite{
		registry: registry,
		runner:   runner,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run executes the named experiments (all of them when names is empty) in
// dependency order, sequentially so timings never share the machine with a
// sibling experiment. Every group is pushed to all reporters, and reporters
// are finished before returning.
func (s *Suite) Run(ctx context.Context, names []string) ([]bench.Result, error) {
	scheduled, err := s.schedule(names)
	if err != nil {
		return nil, err
	}

	all := make([]bench.Result, 0, len(scheduled)*4)
	for _, exp := range scheduled {
		s.log.Info("running experiment", zap.String("name", exp.Name))
		start := time.Now()

		results, err := exp.Run(ctx, s.runner)
		if err != nil {
			return nil, errors.Wrapf(err, "experiment %s", exp.Name)
		}

		s.log.Info("experiment finished",
			zap.String("name", exp.Name),
			zap.Int("results", len(results)),
			zap.Duration("took", bench.Round(time.Since(start))),
		)

		for _, rep := range s.reporters {
			if err := rep.Add(exp.Name, results); err != nil {
				return nil, errors.Wrapf(err, "unable to report experiment %s", exp.Name)
			}
		}
		all = append(all, results...)
	}

	for _, rep := range s.reporters {
		if err := rep.Finish(); err != nil {
			return nil, errors.Wrap(err, "unable to finish report")
		}
	}

	return all, nil
}
