package profile

import (
	"context"

	"github.com/aretw0/jornada/pkg/domain"
)

// Rules is the deterministic rule-table classifier. It holds no state, so a
// single value can serve every session.
type Rules struct{}

// NewRules returns the rule-table classifier.
func NewRules() Rules {
	return Rules{}
}

// Classify implements ports.Classifier.
func (Rules) Classify(ctx context.Context, answers domain.Answers) (*domain.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rate := savingsRateOf(answers)
	return &domain.UserProfile{
		PersonalityType:                personalityType(answers),
		FinancialProfile:               financialProfile(answers),
		EntrepreneurType:               entrepreneurType(answers),
		RecommendedFocus:               recommendedFocus(answers),
		SuggestedHabits:                suggestedHabits(answers),
		SuggestedInvestments:           suggestedInvestments(answers),
		SuggestedBusinessOpportunities: businessOpportunities(answers),
		Strengths:                      strengths(answers, rate),
		Weaknesses:                     weaknesses(answers, rate),
		Recommendations: domain.Recommendations{
			Personal:  personalAdvice(answers),
			Financial: financialAdvice(answers, rate),
			Career:    careerAdvice(answers),
		},
	}, nil
}
