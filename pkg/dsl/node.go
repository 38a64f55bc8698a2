package dsl

import (
	"fmt"

	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/schema"
)

type route struct {
	when domain.Route
	pred Predicate
}

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	node     domain.QuestionNode
	routes   []route
	resolver domain.Resolver
	err      error
}

func (n *NodeBuilder) fail(format string, args ...any) *NodeBuilder {
	if n.err == nil {
		n.err = fmt.Errorf("node %q: "+format, append([]any{n.node.ID}, args...)...)
	}
	return n
}

// Title sets the heading shown above the prompt.
func (n *NodeBuilder) Title(title string) *NodeBuilder {
	n.node.Payload.Title = title
	return n
}

// Question sets the prompt text.
func (n *NodeBuilder) Question(prompt string) *NodeBuilder {
	n.node.Payload.Prompt = prompt
	return n
}

// Describe sets the helper text shown under the prompt.
func (n *NodeBuilder) Describe(description string) *NodeBuilder {
	n.node.Payload.Description = description
	return n
}

// Welcome marks the node as an entry screen without answers.
func (n *NodeBuilder) Welcome() *NodeBuilder {
	n.node.Kind = domain.KindWelcome
	return n
}

// SingleChoice stores one option id under key. The default is "" (unanswered).
func (n *NodeBuilder) SingleChoice(key string, options ...domain.Option) *NodeBuilder {
	if len(options) == 0 {
		return n.fail("single choice %q without options", key)
	}
	n.node.Kind = domain.KindSingleChoice
	n.node.Payload.Options = options
	n.node.Fields = []domain.Field{{Key: key, Type: schema.OneOf(optionIDs(options)...), Default: ""}}
	return n
}

// MultiChoice stores a list of option ids under key; at least min must be
// selected before the node can be left.
func (n *NodeBuilder) MultiChoice(key string, min int, options ...domain.Option) *NodeBuilder {
	if len(options) == 0 {
		return n.fail("multi choice %q without options", key)
	}
	if min < 0 || min > len(options) {
		return n.fail("multi choice %q requires %d of %d options", key, min, len(options))
	}
	n.node.Kind = domain.KindMultiChoice
	n.node.Payload.Options = options
	n.node.Payload.MinSelections = min
	n.node.Fields = []domain.Field{{Key: key, Type: schema.Set(optionIDs(options)...), Default: []string{}}}
	return n
}

// TimeRange stores one HH:MM value per picker.
func (n *NodeBuilder) TimeRange(pickers ...domain.TimePicker) *NodeBuilder {
	if len(pickers) == 0 {
		return n.fail("time range without pickers")
	}
	n.node.Kind = domain.KindTimeRange
	n.node.Payload.TimePickers = pickers
	n.node.Fields = n.node.Fields[:0]
	for _, p := range pickers {
		if err := schema.TimeOfDay().Validate(p.Default); err != nil {
			return n.fail("picker %q: %v", p.Key, err)
		}
		n.node.Fields = append(n.node.Fields, domain.Field{Key: p.Key, Type: schema.TimeOfDay(), Default: p.Default})
	}
	return n
}

// Sliders stores one bounded number per slider.
func (n *NodeBuilder) Sliders(sliders ...domain.Slider) *NodeBuilder {
	if len(sliders) == 0 {
		return n.fail("sliders without inputs")
	}
	n.node.Kind = domain.KindNumericSliders
	n.node.Payload.Sliders = sliders
	n.node.Fields = n.node.Fields[:0]
	for _, s := range sliders {
		if s.Min > s.Max || s.Default < s.Min || s.Default > s.Max {
			return n.fail("slider %q has inconsistent bounds", s.Key)
		}
		n.node.Fields = append(n.node.Fields, domain.Field{Key: s.Key, Type: schema.Range(s.Min, s.Max), Default: s.Default})
	}
	return n
}

// Mindset asks the user to rate statement on a 1 to 10 scale stored under key.
func (n *NodeBuilder) Mindset(key, statement string, def float64) *NodeBuilder {
	scale := domain.Slider{Key: key, Label: statement, Min: 1, Max: 10, Step: 1, Default: def}
	if def < scale.Min || def > scale.Max {
		return n.fail("mindset %q default %g outside scale", key, def)
	}
	n.node.Kind = domain.KindMindsetScale
	n.node.Payload.Statement = statement
	n.node.Payload.Sliders = []domain.Slider{scale}
	n.node.Fields = []domain.Field{{Key: key, Type: schema.Range(scale.Min, scale.Max), Default: def}}
	return n
}

// Commit asks for a concrete action and a timeframe.
func (n *NodeBuilder) Commit(c domain.Commitment, defaultTimeframe string) *NodeBuilder {
	if c.ActionKey == "" || c.TimeframeKey == "" {
		return n.fail("commitment without keys")
	}
	n.node.Kind = domain.KindActionCommitment
	n.node.Payload.Commitment = &c
	n.node.Fields = []domain.Field{
		{Key: c.ActionKey, Type: schema.String(), Default: ""},
		{Key: c.TimeframeKey, Type: schema.String(), Default: defaultTimeframe},
	}
	return n
}

// Profile marks the node as the terminal profile-generation node.
func (n *NodeBuilder) Profile() *NodeBuilder {
	n.node.Kind = domain.KindProfileTerminal
	return n
}

// Branch adds a conditional successor. Branches are evaluated in the order
// they were declared; the first match wins.
func (n *NodeBuilder) Branch(label string, when Predicate, target string) *NodeBuilder {
	n.routes = append(n.routes, route{when: domain.Route{To: target, Label: label, Conditional: true}, pred: when})
	return n
}

// Go adds an unconditional successor.
func (n *NodeBuilder) Go(target string) *NodeBuilder {
	n.routes = append(n.routes, route{when: domain.Route{To: target}})
	return n
}

// Resolve installs a hand-written resolver. targets declares every id it may
// return so the graph can be validated and drawn.
func (n *NodeBuilder) Resolve(fn domain.Resolver, targets ...string) *NodeBuilder {
	n.resolver = fn
	for _, t := range targets {
		n.node.Routes = append(n.node.Routes, domain.Route{To: t})
	}
	return n
}

func (n *NodeBuilder) build() (domain.QuestionNode, error) {
	if n.err != nil {
		return domain.QuestionNode{}, n.err
	}
	if n.node.Kind == "" {
		return domain.QuestionNode{}, fmt.Errorf("node %q: kind not set", n.node.ID)
	}
	if n.resolver != nil && len(n.routes) > 0 {
		return domain.QuestionNode{}, fmt.Errorf("node %q: mixes Resolve with Go/Branch", n.node.ID)
	}
	if n.node.IsTerminal() && (n.resolver != nil || len(n.routes) > 0) {
		return domain.QuestionNode{}, fmt.Errorf("node %q: profile node cannot have successors", n.node.ID)
	}

	node := n.node
	switch {
	case n.resolver != nil:
		node.Next = n.resolver
	case len(n.routes) > 0:
		routes := append([]route(nil), n.routes...)
		node.Routes = make([]domain.Route, 0, len(routes))
		for _, r := range routes {
			node.Routes = append(node.Routes, r.when)
		}
		node.Next = func(a domain.Answers) []string {
			var out []string
			for _, r := range routes {
				if r.pred == nil || r.pred(a) {
					out = append(out, r.when.To)
				}
			}
			return out
		}
	}
	return node, nil
}

// Opt is shorthand for an option without description.
func Opt(id, text string) domain.Option {
	return domain.Option{ID: id, Text: text}
}

// OptDesc is shorthand for an option with description.
func OptDesc(id, text, description string) domain.Option {
	return domain.Option{ID: id, Text: text, Description: description}
}

func optionIDs(options []domain.Option) []string {
	ids := make([]string, len(options))
	for i, o := range options {
		ids[i] = o.ID
	}
	return ids
}
