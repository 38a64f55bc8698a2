// Package graph holds the registry of question nodes that make up an onboarding flow.
//
// Nodes are contributed by modules and merged in registration order: a later
// module replaces any node with the same id. Strict graphs reject the
// replacement instead.
package graph

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"

	"github.com/aretw0/jornada/internal/logging"
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/schema"
)

// DefaultEntry is the entry node id used when none is configured.
const DefaultEntry = "welcome"

// Module is a named group of nodes registered together.
type Module struct {
	Name  string
	Nodes []domain.QuestionNode
}

// Graph is the merged node registry. Safe for concurrent reads; Register
// takes an exclusive lock.
type Graph struct {
	mu     sync.RWMutex
	nodes  map[string]domain.QuestionNode
	order  []string
	owners map[string]string

	entry  string
	strict bool
	logger *slog.Logger
}

// Option configures the Graph.
type Option func(*Graph)

// WithStrict makes Register fail when a node id is registered twice.
func WithStrict(strict bool) Option {
	return func(g *Graph) {
		g.strict = strict
	}
}

// WithEntry sets the entry node id (default: "welcome").
func WithEntry(nodeID string) Option {
	return func(g *Graph) {
		g.entry = nodeID
	}
}

// WithLogger configures a logger for override diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) {
		g.logger = logger
	}
}

// New creates an empty graph.
func New(opts ...Option) *Graph {
	g := &Graph{
		nodes:  make(map[string]domain.QuestionNode),
		owners: make(map[string]string),
		entry:  DefaultEntry,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FromModules creates a graph and registers the given modules.
func FromModules(modules []Module, opts ...Option) (*Graph, error) {
	g := New(opts...)
	if err := g.Register(modules...); err != nil {
		return nil, err
	}
	return g, nil
}

// Register merges modules into the graph in order. On error the graph is
// left unchanged.
func (g *Graph) Register(modules ...Module) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nodes := make(map[string]domain.QuestionNode, len(g.nodes))
	for k, v := range g.nodes {
		nodes[k] = v
	}
	owners := make(map[string]string, len(g.owners))
	for k, v := range g.owners {
		owners[k] = v
	}
	order := slices.Clone(g.order)

	for _, m := range modules {
		for _, node := range m.Nodes {
			if err := checkNode(node); err != nil {
				return fmt.Errorf("module %q: %w", m.Name, err)
			}
			if prev, exists := owners[node.ID]; exists {
				if g.strict {
					return fmt.Errorf("module %q: %w", m.Name, &domain.DuplicateNodeError{NodeID: node.ID})
				}
				g.logger.Debug("node overridden", "node_id", node.ID, "previous_module", prev, "module", m.Name)
			} else {
				order = append(order, node.ID)
			}
			nodes[node.ID] = node
			owners[node.ID] = m.Name
		}
	}

	g.nodes = nodes
	g.owners = owners
	g.order = order
	return nil
}

func checkNode(node domain.QuestionNode) error {
	if node.ID == "" {
		return fmt.Errorf("%w: node without id", domain.ErrInvalidInput)
	}
	if !node.Kind.Valid() {
		return fmt.Errorf("%w: node %q has unknown kind %q", domain.ErrInvalidInput, node.ID, node.Kind)
	}
	seen := make(map[string]bool, len(node.Fields))
	for _, f := range node.Fields {
		if f.Key == "" || f.Type == nil {
			return fmt.Errorf("%w: node %q declares an incomplete field", domain.ErrInvalidInput, node.ID)
		}
		if seen[f.Key] {
			return fmt.Errorf("%w: node %q declares %q twice", domain.ErrInvalidInput, node.ID, f.Key)
		}
		seen[f.Key] = true
	}
	return nil
}

// Entry returns the configured entry node id.
func (g *Graph) Entry() string {
	return g.entry
}

// Has reports whether nodeID is registered.
func (g *Graph) Has(nodeID string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[nodeID]
	return ok
}

// Get returns the node registered under nodeID.
func (g *Graph) Get(nodeID string) (domain.QuestionNode, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	node, ok := g.nodes[nodeID]
	if !ok {
		return domain.QuestionNode{}, &domain.UnknownNodeError{NodeID: nodeID}
	}
	return node, nil
}

// Resolve runs the resolver of nodeID against the answers.
func (g *Graph) Resolve(nodeID string, answers domain.Answers) ([]string, error) {
	node, err := g.Get(nodeID)
	if err != nil {
		return nil, err
	}
	return node.Successors(answers), nil
}

// IDs returns every registered node id in lexical order.
func (g *Graph) IDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Nodes returns the registered nodes in first-registration order.
func (g *Graph) Nodes() []domain.QuestionNode {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nodes := make([]domain.QuestionNode, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// Schema returns the merged key types of every node. When two nodes declare
// the same key, the one registered later wins.
func (g *Graph) Schema() schema.Schema {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s := make(schema.Schema)
	for _, id := range g.order {
		for _, f := range g.nodes[id].Fields {
			s[f.Key] = f.Type
		}
	}
	return s
}

// Defaults returns the merged initial values of every declared key.
func (g *Graph) Defaults() map[string]any {
	g.mu.RLock()
	defer g.mu.RUnlock()
	d := make(map[string]any)
	for _, id := range g.order {
		for _, f := range g.nodes[id].Fields {
			if f.Default != nil {
				d[f.Key] = f.Default
			}
		}
	}
	return d
}

// Validate checks the static structure: the entry exists, every declared
// route points at a registered node and at least one profile node exists.
// A non-terminal node is a dead end when it has no successor or when every
// declared route is conditional. Hand-written resolvers are opaque and can
// still return nothing at runtime.
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var errs []error
	if _, ok := g.nodes[g.entry]; !ok {
		errs = append(errs, fmt.Errorf("entry: %w", &domain.UnknownNodeError{NodeID: g.entry}))
	}

	hasTerminal := false
	for _, id := range g.order {
		node := g.nodes[id]
		if node.IsTerminal() {
			hasTerminal = true
			continue
		}
		switch {
		case node.Next == nil:
			errs = append(errs, &domain.DeadEndError{NodeID: node.ID, Kind: node.Kind})
		case allConditional(node.Routes):
			errs = append(errs, fmt.Errorf("every route is conditional: %w", &domain.DeadEndError{NodeID: node.ID, Kind: node.Kind}))
		}
		for _, r := range node.Routes {
			if _, ok := g.nodes[r.To]; !ok {
				errs = append(errs, &domain.UnknownNodeError{NodeID: r.To, From: node.ID})
			}
		}
	}
	if !hasTerminal {
		errs = append(errs, fmt.Errorf("%w: no %s node registered", domain.ErrInvalidInput, domain.KindProfileTerminal))
	}
	return errors.Join(errs...)
}

func allConditional(routes []domain.Route) bool {
	if len(routes) == 0 {
		return false
	}
	for _, r := range routes {
		if !r.Conditional {
			return false
		}
	}
	return true
}
