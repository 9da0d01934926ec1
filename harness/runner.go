// Package harness registers named simnet test cases and runs each one
// against a freshly initialized chain, so no case observes state left
// behind by another.
package harness

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/stacksforge/clarion/internal/logger"
	"github.com/stacksforge/clarion/simnet"
)

// TestFn is the body of one registered case. It receives a chain backed
// by a fresh engine and the session accounts keyed by name.
type TestFn func(chain *simnet.Chain, accounts map[string]simnet.Account) error

// Case is one registered test.
type Case struct {
	Name string
	Fn   TestFn
}

// CaseResult is the outcome of one executed case.
type CaseResult struct {
	Name     string
	Err      error
	Duration time.Duration
}

// EngineFactory builds a fresh engine for one case from the session
// settings. The default factory builds the in-memory engine.
type EngineFactory func(simnet.SessionSettings) simnet.Engine

// Runner owns the registered cases and the session settings they run
// against.
type Runner struct {
	settings   simnet.SessionSettings
	newEngine  EngineFactory
	log        logger.Logger
	cases      []Case
	registered map[string]bool
}

// Option customizes a Runner.
type Option func(*Runner)

// WithEngineFactory swaps the engine implementation cases run against.
func WithEngineFactory(f EngineFactory) Option {
	return func(r *Runner) { r.newEngine = f }
}

// WithLogger swaps the runner's logger.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// NewRunner creates a runner for the given session settings.
func NewRunner(settings simnet.SessionSettings, opts ...Option) *Runner {
	r := &Runner{
		settings: settings,
		newEngine: func(s simnet.SessionSettings) simnet.Engine {
			return simnet.NewMemEngine(s)
		},
		log:        logger.New(false),
		registered: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a named case. Names must be unique.
func (r *Runner) Register(name string, fn TestFn) error {
	if name == "" {
		return errors.New("harness: case name is required")
	}
	if r.registered[name] {
		return errors.Errorf("harness: case %q already registered", name)
	}
	r.registered[name] = true
	r.cases = append(r.cases, Case{Name: name, Fn: fn})
	return nil
}

// Run executes every registered case in registration order. A failing
// case does not stop the run; the per-case outcomes are returned in
// order.
func (r *Runner) Run() []CaseResult {
	results := make([]CaseResult, 0, len(r.cases))
	accounts := r.settings.AccountsByName()

	for _, c := range r.cases {
		chain := simnet.NewChain(r.newEngine(r.settings))

		start := time.Now()
		err := c.Fn(chain, accounts)
		elapsed := time.Since(start)

		if err != nil {
			r.log.Error("case failed",
				zap.String("case", c.Name),
				zap.Duration("duration", elapsed),
				zap.Error(err),
			)
		} else {
			r.log.Info("case passed",
				zap.String("case", c.Name),
				zap.Duration("duration", elapsed),
			)
		}

		results = append(results, CaseResult{Name: c.Name, Err: err, Duration: elapsed})
	}
	return results
}

// Failed reports whether any result carries an error.
func Failed(results []CaseResult) bool {
	for _, res := range results {
		if res.Err != nil {
			return true
		}
	}
	return false
}
