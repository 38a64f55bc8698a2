package profile

import "github.com/aretw0/jornada/pkg/domain"

func personalityType(a domain.Answers) string {
	switch {
	case a.Equals("entrepreneurProfile", "visionary"):
		return "Visionário Estratégico"
	case a.Equals("entrepreneurProfile", "builder"):
		return "Construtor Sistemático"
	case a.Equals("energy", "high-energy") && a.Equals("lifestyle", "very-satisfied"):
		return "Entusiasta Energético"
	case a.Equals("concentration", "high-focus"):
		return "Analista Focado"
	default:
		return "Adaptador Versátil"
	}
}

var riskProfiles = map[string]string{
	"conservative": "Conservador",
	"moderate":     "Moderado",
	"aggressive":   "Agressivo",
}

func financialProfile(a domain.Answers) string {
	if p, ok := riskProfiles[a.String("riskTolerance")]; ok {
		return p
	}
	switch {
	case a.Includes("financialGoals", "wealth-building"):
		return "Acumulador de Patrimônio"
	case a.Includes("financialGoals", "passive-income"):
		return "Gerador de Renda Passiva"
	default:
		return "Equilibrado"
	}
}

var entrepreneurTypes = map[string]string{
	"visionary":   "Visionário",
	"builder":     "Construtor",
	"specialist":  "Especialista",
	"opportunist": "Oportunista",
}

func entrepreneurType(a domain.Answers) string {
	if t, ok := entrepreneurTypes[a.String("entrepreneurProfile")]; ok {
		return t
	}
	return "Empreendedor em Desenvolvimento"
}
