package onboarding

import "github.com/aretw0/jornada/pkg/graph"

// Node ids shared across modules.
const (
	NodeWelcome             = "welcome"
	NodePersonalInterests   = "personalInterests"
	NodeConcentration       = "concentration"
	NodeFinancialGoals      = "financialGoals"
	NodeRiskTolerance       = "riskTolerance"
	NodeFinancialDetails    = "financialDetails"
	NodeBusinessInterests   = "businessInterests"
	NodeEntrepreneurProfile = "entrepreneurProfile"
	NodeLifeGoals           = "lifeGoals"
	NodeLearning            = "learning"
	NodeProfile             = "profileGeneration"
)

// Classic returns the standard onboarding: personal, financial, business and
// goals modules, in registration order.
func Classic() []graph.Module {
	return []graph.Module{
		Personal(),
		Financial(),
		Business(),
		Goals(),
	}
}

// Extended returns Classic followed by the commitment steps and the mindset
// track. Both override classic nodes: the mindset module replaces welcome so
// the flow opens with the mindset questions.
func Extended() []graph.Module {
	return append(Classic(), Commitments(), Mindset())
}

// Catalog returns the module set registered under name ("classic" or
// "extended").
func Catalog(name string) ([]graph.Module, bool) {
	switch name {
	case "", "classic":
		return Classic(), true
	case "extended":
		return Extended(), true
	}
	return nil, false
}

// Names lists the catalogs accepted by Catalog.
func Names() []string {
	return []string{"classic", "extended"}
}
