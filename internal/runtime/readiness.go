package runtime

import (
	"fmt"
	"strings"

	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/schema"
)

// Ready reports whether node can be left with the given answers.
// It returns a *domain.NotReadyError describing the first unmet requirement.
func Ready(node domain.QuestionNode, answers domain.Answers) error {
	notReady := func(key, reason string) error {
		return &domain.NotReadyError{NodeID: node.ID, Key: key, Reason: reason}
	}

	switch node.Kind {
	case domain.KindWelcome:
		return nil

	case domain.KindProfileTerminal:
		return notReady("", "profile node has no successor")

	case domain.KindSingleChoice:
		for _, key := range node.AnswerKeys() {
			if answers.String(key) == "" {
				return notReady(key, "an option must be selected")
			}
		}

	case domain.KindMultiChoice:
		for _, key := range node.AnswerKeys() {
			if got := len(answers.Strings(key)); got < node.Payload.MinSelections {
				return notReady(key, pluralSelections(node.Payload.MinSelections, got))
			}
		}

	case domain.KindTimeRange:
		for _, key := range node.AnswerKeys() {
			if err := schema.TimeOfDay().Validate(answers.String(key)); err != nil {
				return notReady(key, err.Error())
			}
		}

	case domain.KindNumericSliders, domain.KindMindsetScale:
		for _, f := range node.Fields {
			v, ok := answers.Number(f.Key)
			if !ok {
				return notReady(f.Key, "a value is required")
			}
			if err := f.Type.Validate(v); err != nil {
				return notReady(f.Key, err.Error())
			}
		}

	case domain.KindActionCommitment:
		c := node.Payload.Commitment
		if c == nil {
			return nil
		}
		if strings.TrimSpace(answers.String(c.ActionKey)) == "" {
			return notReady(c.ActionKey, "describe the action you commit to")
		}
		if strings.TrimSpace(answers.String(c.TimeframeKey)) == "" {
			return notReady(c.TimeframeKey, "choose a timeframe")
		}
	}
	return nil
}

func pluralSelections(want, got int) string {
	if want == 1 {
		return fmt.Sprintf("select at least 1 option (selected %d)", got)
	}
	return fmt.Sprintf("select at least %d options (selected %d)", want, got)
}
