package yaml

// ModuleDef is the document shape of a question module file.
type ModuleDef struct {
	Module string     `mapstructure:"module" validate:"required"`
	Nodes  []NodeDef `mapstructure:"nodes" validate:"required,min=1,dive"`
}

// NodeDef declares one question node. Which fields apply depends on Kind.
type NodeDef struct {
	ID          string `mapstructure:"id" validate:"required"`
	Kind        string `mapstructure:"kind" validate:"required,oneof=welcome single-choice multi-choice time-range numeric-sliders mindset-scale action-commitment profile-terminal"`
	Title       string `mapstructure:"title"`
	Prompt      string `mapstructure:"prompt"`
	Description string `mapstructure:"description"`

	// Choice and mindset nodes
	Key           string       `mapstructure:"key"`
	Options       []OptionDef `mapstructure:"options" validate:"dive"`
	MinSelections int          `mapstructure:"min_selections" validate:"gte=0"`

	// Input nodes
	Sliders []SliderDef `mapstructure:"sliders" validate:"dive"`
	Pickers []PickerDef `mapstructure:"pickers" validate:"dive"`

	// Mindset nodes
	Statement string   `mapstructure:"statement"`
	Default   *float64 `mapstructure:"default"`

	// Commitment nodes
	Commitment       *CommitmentDef `mapstructure:"commitment"`
	DefaultTimeframe string          `mapstructure:"default_timeframe"`

	Next []RuleDef `mapstructure:"next" validate:"dive"`
}

// OptionDef is one selectable choice.
type OptionDef struct {
	ID          string `mapstructure:"id" validate:"required"`
	Text        string `mapstructure:"text" validate:"required"`
	Description string `mapstructure:"description"`
}

// SliderDef is one bounded numeric input.
type SliderDef struct {
	Key     string  `mapstructure:"key" validate:"required"`
	Label   string  `mapstructure:"label"`
	Min     float64 `mapstructure:"min"`
	Max     float64 `mapstructure:"max" validate:"gtefield=Min"`
	Step    float64 `mapstructure:"step" validate:"gte=0"`
	Default float64 `mapstructure:"default"`
	Unit    string  `mapstructure:"unit"`
}

// PickerDef is one HH:MM input.
type PickerDef struct {
	Key     string `mapstructure:"key" validate:"required"`
	Label   string `mapstructure:"label"`
	Default string `mapstructure:"default" validate:"required"`
}

// CommitmentDef configures an action-commitment node.
type CommitmentDef struct {
	ActionKey    string   `mapstructure:"action_key" validate:"required"`
	TimeframeKey string   `mapstructure:"timeframe_key" validate:"required"`
	Placeholder  string   `mapstructure:"placeholder"`
	Timeframes   []string `mapstructure:"timeframes"`
}

// RuleDef is one ordered successor rule. A rule without When always matches.
type RuleDef struct {
	To    string         `mapstructure:"to" validate:"required"`
	Label string         `mapstructure:"label"`
	When  *ConditionDef `mapstructure:"when"`
}

// ConditionDef tests one answer key. Exactly one operator must be set.
type ConditionDef struct {
	Key         string   `mapstructure:"key" validate:"required"`
	Equals      string   `mapstructure:"equals"`
	Includes    string   `mapstructure:"includes"`
	IncludesAny []string `mapstructure:"includes_any"`
	Gte         *float64 `mapstructure:"gte"`
	Lt          *float64 `mapstructure:"lt"`
}
