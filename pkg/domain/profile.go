package domain

import "slices"

// Habit is a suggested recurring practice.
type Habit struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Cadence  string `json:"cadence"`
}

// Investment is one slice of a suggested allocation.
type Investment struct {
	AssetClass        string `json:"asset_class"`
	AllocationPercent int    `json:"allocation_percent"`
	RiskTier          string `json:"risk_tier"`
}

// BusinessOpportunity is a suggested venture.
type BusinessOpportunity struct {
	Name            string `json:"name"`
	InvestmentLevel string `json:"investment_level"`
	TimeRequired    string `json:"time_required"`
}

// Recommendations groups the advice by area.
type Recommendations struct {
	Personal  []string `json:"personal"`
	Financial []string `json:"financial"`
	Career    []string `json:"career"`
}

// UserProfile is the result of classifying a final answer snapshot.
// Equal snapshots always produce equal profiles.
type UserProfile struct {
	PersonalityType                string                `json:"personality_type"`
	FinancialProfile               string                `json:"financial_profile"`
	EntrepreneurType               string                `json:"entrepreneur_type"`
	RecommendedFocus               []string              `json:"recommended_focus"`
	SuggestedHabits                []Habit               `json:"suggested_habits"`
	SuggestedInvestments           []Investment          `json:"suggested_investments"`
	SuggestedBusinessOpportunities []BusinessOpportunity `json:"suggested_business_opportunities"`
	Strengths                      []string              `json:"strengths"`
	Weaknesses                     []string              `json:"weaknesses"`
	Recommendations                Recommendations       `json:"recommendations"`
}

// Clone returns a deep copy of the profile.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	c := *p
	c.RecommendedFocus = slices.Clone(p.RecommendedFocus)
	c.SuggestedHabits = slices.Clone(p.SuggestedHabits)
	c.SuggestedInvestments = slices.Clone(p.SuggestedInvestments)
	c.SuggestedBusinessOpportunities = slices.Clone(p.SuggestedBusinessOpportunities)
	c.Strengths = slices.Clone(p.Strengths)
	c.Weaknesses = slices.Clone(p.Weaknesses)
	c.Recommendations = Recommendations{
		Personal:  slices.Clone(p.Recommendations.Personal),
		Financial: slices.Clone(p.Recommendations.Financial),
		Career:    slices.Clone(p.Recommendations.Career),
	}
	return &c
}

// TotalAllocation sums the allocation percentages.
func (p *UserProfile) TotalAllocation() int {
	total := 0
	for _, inv := range p.SuggestedInvestments {
		total += inv.AllocationPercent
	}
	return total
}
