package jornada

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/jornada/internal/logging"
	"github.com/aretw0/jornada/internal/runtime"
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/graph"
	"github.com/aretw0/jornada/pkg/onboarding"
	"github.com/aretw0/jornada/pkg/ports"
	"github.com/aretw0/jornada/pkg/profile"
)

// Version is the release of the engine, overridden at build time.
var Version = "dev"

// Outcome and AdvanceResult describe what Advance did.
type (
	Outcome       = runtime.Outcome
	AdvanceResult = runtime.AdvanceResult
)

const (
	OutcomeAdvanced = runtime.OutcomeAdvanced
	OutcomeBlocked  = runtime.OutcomeBlocked
	OutcomeTerminal = runtime.OutcomeTerminal
)

// Engine is the high-level entry point for the library. It owns the merged
// question graph, the flow controller and the profile engine, and creates
// sessions over them. An Engine is safe to share between sessions.
type Engine struct {
	graph    *graph.Graph
	flow     *runtime.Engine
	profiles *profile.Engine

	modules    []graph.Module
	loader     ports.ModuleLoader
	classifier ports.Classifier
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
	strict     bool
	lenient    bool
	entry      string
	Name       string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithModules registers question modules in order. Later modules override
// nodes of earlier ones.
func WithModules(modules ...graph.Module) Option {
	return func(e *Engine) {
		e.modules = append(e.modules, modules...)
	}
}

// WithLoader adds the modules produced by l after those given with WithModules.
func WithLoader(l ports.ModuleLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithClassifier replaces the in-process rule tables used by CompleteFlow.
func WithClassifier(c ports.Classifier) Option {
	return func(e *Engine) {
		e.classifier = c
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStrict rejects modules that redefine an already registered node id.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// WithLenientDeadEnds treats a non-terminal node without successors as the
// end of the path instead of a configuration error.
func WithLenientDeadEnds() Option {
	return func(e *Engine) {
		e.lenient = true
	}
}

// WithEntryNode configures the initial node ID (default: "welcome").
func WithEntryNode(nodeID string) Option {
	return func(e *Engine) {
		e.entry = nodeID
	}
}

// WithName labels the engine in logs.
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// New builds an Engine. Without WithModules or WithLoader it serves the
// classic onboarding catalog. The merged graph is validated: dead ends are
// fatal unless WithLenientDeadEnds is set, in which case problems are logged.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{entry: graph.DefaultEntry}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("graph", eng.Name)
	}

	modules := eng.modules
	if eng.loader != nil {
		loaded, err := eng.loader.Modules()
		if err != nil {
			return nil, fmt.Errorf("failed to load modules: %w", err)
		}
		modules = append(modules, loaded...)
	}
	if len(modules) == 0 {
		modules = onboarding.Classic()
	}

	g, err := graph.FromModules(modules,
		graph.WithStrict(eng.strict),
		graph.WithEntry(eng.entry),
		graph.WithLogger(eng.logger),
	)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		if !eng.lenient {
			return nil, fmt.Errorf("invalid question graph: %w", err)
		}
		eng.logger.Warn("question graph has structural problems", "error", err)
	}
	eng.graph = g

	flowOpts := []runtime.EngineOption{
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
	}
	if eng.lenient {
		flowOpts = append(flowOpts, runtime.WithLenientDeadEnds())
	}
	eng.flow = runtime.NewEngine(g, flowOpts...)

	profileOpts := []profile.Option{
		profile.WithLogger(eng.logger),
		profile.WithLifecycleHooks(eng.hooks),
	}
	if eng.classifier != nil {
		profileOpts = append(profileOpts, profile.WithClassifier(eng.classifier))
	}
	eng.profiles = profile.NewEngine(profileOpts...)

	return eng, nil
}

// Graph returns the merged question graph.
func (e *Engine) Graph() *graph.Graph {
	return e.graph
}

// Inspect returns every node in registration order, for visualization and
// introspection tools.
func (e *Engine) Inspect() []domain.QuestionNode {
	return e.graph.Nodes()
}
