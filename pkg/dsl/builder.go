package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/graph"
)

// Builder manages the construction of one module.
type Builder struct {
	name  string
	nodes []*NodeBuilder
	index map[string]*NodeBuilder
}

// New creates a new module builder.
func New(name string) *Builder {
	return &Builder{
		name:  name,
		index: make(map[string]*NodeBuilder),
	}
}

// Add creates a new node in the module.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.index[id]; ok {
		return nb
	}
	nb := &NodeBuilder{
		node: domain.QuestionNode{ID: id},
	}
	b.index[id] = nb
	b.nodes = append(b.nodes, nb)
	return nb
}

// Build compiles the module. Nodes keep the order in which they were added.
func (b *Builder) Build() (graph.Module, error) {
	var errs []error
	nodes := make([]domain.QuestionNode, 0, len(b.nodes))
	for _, nb := range b.nodes {
		node, err := nb.build()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		nodes = append(nodes, node)
	}
	if err := errors.Join(errs...); err != nil {
		return graph.Module{}, fmt.Errorf("module %q: %w", b.name, err)
	}
	return graph.Module{Name: b.name, Nodes: nodes}, nil
}

// MustBuild is like Build but panics on error. Intended for static catalogs.
func (b *Builder) MustBuild() graph.Module {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}
