package domain

import (
	"encoding/json"

	"github.com/aretw0/jornada/pkg/schema"
)

// NodeKind defines how a question node is presented and when it counts as answered.
type NodeKind string

const (
	// KindWelcome is the entry screen. It has no answers and is always ready.
	KindWelcome NodeKind = "welcome"
	// KindSingleChoice asks for exactly one option id.
	KindSingleChoice NodeKind = "single-choice"
	// KindMultiChoice asks for a list of option ids, at least MinSelections long.
	KindMultiChoice NodeKind = "multi-choice"
	// KindTimeRange asks for one or more HH:MM values.
	KindTimeRange NodeKind = "time-range"
	// KindNumericSliders asks for one or more bounded numbers.
	KindNumericSliders NodeKind = "numeric-sliders"
	// KindMindsetScale asks the user to rate a statement on a bounded scale.
	KindMindsetScale NodeKind = "mindset-scale"
	// KindActionCommitment asks for a concrete action and a timeframe.
	KindActionCommitment NodeKind = "action-commitment"
	// KindProfileTerminal is the sink. Reaching it enables profile derivation.
	KindProfileTerminal NodeKind = "profile-terminal"
)

// Kinds lists every supported node kind.
var Kinds = []NodeKind{
	KindWelcome,
	KindSingleChoice,
	KindMultiChoice,
	KindTimeRange,
	KindNumericSliders,
	KindMindsetScale,
	KindActionCommitment,
	KindProfileTerminal,
}

// Valid reports whether k is a known kind.
func (k NodeKind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Resolver computes the ordered candidate successors of a node from the
// current answers. The first candidate is taken; an empty list means the node
// has no successor. Resolvers must be pure.
type Resolver func(Answers) []string

// Option is one selectable choice of a single or multi choice node.
type Option struct {
	ID          string `json:"id" yaml:"id"`
	Text        string `json:"text" yaml:"text"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Slider describes a bounded numeric input.
type Slider struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
	Unit    string  `json:"unit,omitempty"`
}

// TimePicker describes a HH:MM input.
type TimePicker struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Default string `json:"default"`
}

// Commitment describes the inputs of an action-commitment node.
type Commitment struct {
	ActionKey    string   `json:"action_key"`
	TimeframeKey string   `json:"timeframe_key"`
	Placeholder  string   `json:"placeholder,omitempty"`
	Timeframes   []string `json:"timeframes,omitempty"`
}

// Payload holds the presentation data of a node. Which fields are relevant
// depends on the node kind.
type Payload struct {
	Title         string       `json:"title,omitempty"`
	Prompt        string       `json:"prompt,omitempty"`
	Description   string       `json:"description,omitempty"`
	Options       []Option     `json:"options,omitempty"`
	MinSelections int          `json:"min_selections,omitempty"`
	Sliders       []Slider     `json:"sliders,omitempty"`
	TimePickers   []TimePicker `json:"time_pickers,omitempty"`
	Statement     string       `json:"statement,omitempty"`
	Commitment    *Commitment  `json:"commitment,omitempty"`
}

// Field is an answer key written by a node, with its type and initial value.
type Field struct {
	Key     string
	Type    schema.Type
	Default any
}

// MarshalJSON renders the type by name.
func (f Field) MarshalJSON() ([]byte, error) {
	typeName := ""
	if f.Type != nil {
		typeName = f.Type.Name()
	}
	return json.Marshal(struct {
		Key     string `json:"key"`
		Type    string `json:"type"`
		Default any    `json:"default"`
	}{f.Key, typeName, f.Default})
}

// Route is a declared successor of a node. Routes are informational: they
// feed validation and visualization, while Next decides at runtime.
type Route struct {
	To    string `json:"to"`
	Label string `json:"label,omitempty"`

	// Conditional is set when the route only applies under a predicate.
	Conditional bool `json:"conditional,omitempty"`
}

// QuestionNode is one step of the onboarding flow.
type QuestionNode struct {
	ID      string   `json:"id"`
	Kind    NodeKind `json:"kind"`
	Fields  []Field  `json:"fields,omitempty"`
	Payload Payload  `json:"payload"`
	Routes  []Route  `json:"routes,omitempty"`

	// Next resolves the successors. A nil resolver means no successor.
	Next Resolver `json:"-"`
}

// AnswerKeys returns the keys this node writes, in declaration order.
func (n QuestionNode) AnswerKeys() []string {
	keys := make([]string, 0, len(n.Fields))
	for _, f := range n.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// IsTerminal reports whether the node ends the flow.
func (n QuestionNode) IsTerminal() bool {
	return n.Kind == KindProfileTerminal
}

// Successors runs the resolver against the given answers.
func (n QuestionNode) Successors(a Answers) []string {
	if n.Next == nil {
		return nil
	}
	return n.Next(a)
}
