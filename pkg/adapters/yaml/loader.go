// Package yaml loads question modules from YAML files.
//
// A module file lists nodes in order; every node declares its kind, its
// inputs and an ordered list of `next` rules:
//
//	module: habits
//	nodes:
//	  - id: energy
//	    kind: single-choice
//	    key: energy
//	    prompt: Como está sua energia?
//	    options:
//	      - {id: high-energy, text: Alta}
//	      - {id: low-energy, text: Baixa}
//	    next:
//	      - to: rest
//	        when: {key: energy, equals: low-energy}
//	      - to: profileGeneration
//
// Conditions support equals, includes, includes_any, gte and lt.
package yaml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/dsl"
	"github.com/aretw0/jornada/pkg/graph"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	yamlv3 "gopkg.in/yaml.v3"
)

const defaultMindset = 5

// Loader implements ports.ModuleLoader over YAML files. Each path is a file
// or a directory whose *.yaml and *.yml files are read in name order.
type Loader struct {
	paths []string
}

// New creates a Loader for the given paths. Modules are returned in path order.
func New(paths ...string) *Loader {
	return &Loader{paths: paths}
}

// Modules reads and compiles every module file.
func (l *Loader) Modules() ([]graph.Module, error) {
	files, err := l.files()
	if err != nil {
		return nil, err
	}

	modules := make([]graph.Module, 0, len(files))
	var errs []error
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to read %s: %w", path, err))
			continue
		}
		m, err := Parse(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		modules = append(modules, m)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return modules, nil
}

func (l *Loader) files() ([]string, error) {
	var files []string
	for _, p := range l.paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", p, err)
		}
		var found []string
		for _, e := range entries {
			ext := strings.ToLower(filepath.Ext(e.Name()))
			if !e.IsDir() && (ext == ".yaml" || ext == ".yml") {
				found = append(found, filepath.Join(p, e.Name()))
			}
		}
		slices.Sort(found)
		files = append(files, found...)
	}
	return files, nil
}

// Parse compiles one YAML module document.
func Parse(data []byte) (graph.Module, error) {
	var raw map[string]any
	if err := yamlv3.Unmarshal(data, &raw); err != nil {
		return graph.Module{}, fmt.Errorf("%w: invalid yaml: %v", domain.ErrInvalidInput, err)
	}

	var def ModuleDef
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &def,
		ErrorUnused: true,
	})
	if err != nil {
		return graph.Module{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return graph.Module{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if err := validate.Struct(def); err != nil {
		return graph.Module{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return def.Build()
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Build compiles the module with the node DSL.
func (s ModuleDef) Build() (graph.Module, error) {
	b := dsl.New(s.Module)
	for _, n := range s.Nodes {
		if err := n.apply(b.Add(n.ID)); err != nil {
			return graph.Module{}, fmt.Errorf("%w: node %q: %v", domain.ErrInvalidInput, n.ID, err)
		}
	}
	m, err := b.Build()
	if err != nil {
		return graph.Module{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return m, nil
}

func (n NodeDef) apply(nb *dsl.NodeBuilder) error {
	nb.Title(n.Title).Question(n.Prompt).Describe(n.Description)

	switch domain.NodeKind(n.Kind) {
	case domain.KindWelcome:
		nb.Welcome()
	case domain.KindSingleChoice:
		if n.Key == "" {
			return errors.New("key is required")
		}
		nb.SingleChoice(n.Key, n.options()...)
	case domain.KindMultiChoice:
		if n.Key == "" {
			return errors.New("key is required")
		}
		nb.MultiChoice(n.Key, n.MinSelections, n.options()...)
	case domain.KindTimeRange:
		pickers := make([]domain.TimePicker, 0, len(n.Pickers))
		for _, p := range n.Pickers {
			pickers = append(pickers, domain.TimePicker{Key: p.Key, Label: p.Label, Default: p.Default})
		}
		nb.TimeRange(pickers...)
	case domain.KindNumericSliders:
		sliders := make([]domain.Slider, 0, len(n.Sliders))
		for _, s := range n.Sliders {
			sliders = append(sliders, domain.Slider{
				Key: s.Key, Label: s.Label, Min: s.Min, Max: s.Max, Step: s.Step, Default: s.Default, Unit: s.Unit,
			})
		}
		nb.Sliders(sliders...)
	case domain.KindMindsetScale:
		if n.Key == "" || n.Statement == "" {
			return errors.New("key and statement are required")
		}
		def := float64(defaultMindset)
		if n.Default != nil {
			def = *n.Default
		}
		nb.Mindset(n.Key, n.Statement, def)
	case domain.KindActionCommitment:
		if n.Commitment == nil {
			return errors.New("commitment is required")
		}
		nb.Commit(domain.Commitment{
			ActionKey:    n.Commitment.ActionKey,
			TimeframeKey: n.Commitment.TimeframeKey,
			Placeholder:  n.Commitment.Placeholder,
			Timeframes:   n.Commitment.Timeframes,
		}, n.DefaultTimeframe)
	case domain.KindProfileTerminal:
		if len(n.Next) > 0 {
			return errors.New("profile node cannot have next rules")
		}
		nb.Profile()
	}

	for i, r := range n.Next {
		if r.When == nil {
			nb.Go(r.To)
			continue
		}
		pred, label, err := r.When.predicate()
		if err != nil {
			return fmt.Errorf("next[%d]: %w", i, err)
		}
		if r.Label != "" {
			label = r.Label
		}
		nb.Branch(label, pred, r.To)
	}
	return nil
}

func (n NodeDef) options() []domain.Option {
	opts := make([]domain.Option, 0, len(n.Options))
	for _, o := range n.Options {
		opts = append(opts, domain.Option{ID: o.ID, Text: o.Text, Description: o.Description})
	}
	return opts
}

// predicate compiles the condition and a default route label.
func (c ConditionDef) predicate() (dsl.Predicate, string, error) {
	var (
		pred  dsl.Predicate
		label string
		set   int
	)
	if c.Equals != "" {
		set++
		pred, label = dsl.Equals(c.Key, c.Equals), fmt.Sprintf("%s = %s", c.Key, c.Equals)
	}
	if c.Includes != "" {
		set++
		pred, label = dsl.Includes(c.Key, c.Includes), fmt.Sprintf("%s ∋ %s", c.Key, c.Includes)
	}
	if len(c.IncludesAny) > 0 {
		set++
		pred, label = dsl.IncludesAny(c.Key, c.IncludesAny...), fmt.Sprintf("%s ∩ {%s}", c.Key, strings.Join(c.IncludesAny, ", "))
	}
	if c.Gte != nil {
		set++
		pred, label = dsl.AtLeast(c.Key, *c.Gte), fmt.Sprintf("%s ≥ %g", c.Key, *c.Gte)
	}
	if c.Lt != nil {
		set++
		pred, label = dsl.Below(c.Key, *c.Lt), fmt.Sprintf("%s < %g", c.Key, *c.Lt)
	}
	if set != 1 {
		return nil, "", fmt.Errorf("condition on %q must set exactly one operator, got %d", c.Key, set)
	}
	return pred, label, nil
}
