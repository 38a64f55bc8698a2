package profile

import "github.com/aretw0/jornada/pkg/domain"

const maxFocusAreas = 4

// focusRules are checked in order; every match contributes its label.
var focusRules = []struct {
	match func(domain.Answers) bool
	label string
}{
	{func(a domain.Answers) bool { return a.Includes("personalInterests", "health") }, "Saúde e Bem-estar"},
	{func(a domain.Answers) bool { return a.Includes("personalInterests", "finances") }, "Educação Financeira"},
	{func(a domain.Answers) bool { return a.Includes("personalInterests", "career") }, "Desenvolvimento Profissional"},
	{func(a domain.Answers) bool { return a.Includes("personalInterests", "business") }, "Empreendedorismo"},
	{func(a domain.Answers) bool { return a.Equals("concentration", "low-focus") }, "Melhoria de Foco"},
}

func recommendedFocus(a domain.Answers) []string {
	var focus []string
	for _, r := range focusRules {
		if r.match(a) {
			focus = append(focus, r.label)
		}
	}
	if len(focus) == 0 {
		focus = []string{"Autoconhecimento", "Produtividade"}
	}
	if len(focus) > maxFocusAreas {
		focus = focus[:maxFocusAreas]
	}
	return focus
}

var habitRules = []struct {
	match func(domain.Answers) bool
	habit domain.Habit
}{
	{
		func(a domain.Answers) bool { return a.Equals("energy", "low-energy") },
		domain.Habit{Name: "Exercício Físico Matinal", Category: "Bem-estar", Cadence: "3-5 vezes por semana"},
	},
	{
		func(a domain.Answers) bool {
			return a.Equals("concentration", "low-focus") || a.Equals("concentration", "medium-focus")
		},
		domain.Habit{Name: "Meditação de Foco", Category: "Bem-estar", Cadence: "Diariamente por 10 minutos"},
	},
	{
		func(a domain.Answers) bool { return a.Includes("financialGoals", "wealth-building") },
		domain.Habit{Name: "Revisão de Investimentos", Category: "Finanças", Cadence: "Semanalmente"},
	},
	{
		func(a domain.Answers) bool { return a.Includes("learningAreas", "finance") },
		domain.Habit{Name: "Estudo de Finanças", Category: "Educação", Cadence: "3 vezes por semana"},
	},
	{
		func(a domain.Answers) bool { return len(a.Strings("businessInterests")) > 0 },
		domain.Habit{Name: "Networking Empreendedor", Category: "Empreendimento", Cadence: "Quinzenalmente"},
	},
}

// genericHabits pad short habit lists. Both are appended together, so a
// profile with no matching rule gets exactly these two.
var genericHabits = []domain.Habit{
	{Name: "Leitura para Desenvolvimento", Category: "Educação", Cadence: "20 minutos diários"},
	{Name: "Planejamento Semanal", Category: "Produtividade", Cadence: "Todo domingo"},
}

const minHabits = 3

func suggestedHabits(a domain.Answers) []domain.Habit {
	var habits []domain.Habit
	for _, r := range habitRules {
		if r.match(a) {
			habits = append(habits, r.habit)
		}
	}
	if len(habits) < minHabits {
		habits = append(habits, genericHabits...)
	}
	return habits
}

// Allocation tables per risk tier. Each sums to 100.
var (
	conservativeAllocation = []domain.Investment{
		{AssetClass: "Renda Fixa", AllocationPercent: 60, RiskTier: "Baixo"},
		{AssetClass: "Fundos Imobiliários", AllocationPercent: 20, RiskTier: "Médio"},
		{AssetClass: "Ações", AllocationPercent: 10, RiskTier: "Alto"},
		{AssetClass: "Reserva de Emergência", AllocationPercent: 10, RiskTier: "Baixo"},
	}
	moderateAllocation = []domain.Investment{
		{AssetClass: "Renda Fixa", AllocationPercent: 40, RiskTier: "Baixo"},
		{AssetClass: "Fundos Imobiliários", AllocationPercent: 25, RiskTier: "Médio"},
		{AssetClass: "Ações", AllocationPercent: 25, RiskTier: "Alto"},
		{AssetClass: "Investimentos Alternativos", AllocationPercent: 10, RiskTier: "Alto"},
	}
	aggressiveAllocation = []domain.Investment{
		{AssetClass: "Ações", AllocationPercent: 50, RiskTier: "Alto"},
		{AssetClass: "Fundos Imobiliários", AllocationPercent: 20, RiskTier: "Médio"},
		{AssetClass: "Renda Fixa", AllocationPercent: 15, RiskTier: "Baixo"},
		{AssetClass: "Investimentos Internacionais", AllocationPercent: 15, RiskTier: "Alto"},
	}
)

func suggestedInvestments(a domain.Answers) []domain.Investment {
	var table []domain.Investment
	switch a.String("riskTolerance") {
	case "conservative":
		table = conservativeAllocation
	case "moderate":
		table = moderateAllocation
	default:
		// Aggressive or not answered.
		table = aggressiveAllocation
	}
	return append([]domain.Investment(nil), table...)
}

var opportunityByInterest = []struct {
	interest    string
	opportunity domain.BusinessOpportunity
}{
	{"tech", domain.BusinessOpportunity{Name: "Software as a Service (SaaS)", InvestmentLevel: "Médio", TimeRequired: "Alto"}},
	{"ecommerce", domain.BusinessOpportunity{Name: "Dropshipping de Produtos Especializados", InvestmentLevel: "Baixo", TimeRequired: "Médio"}},
	{"content", domain.BusinessOpportunity{Name: "Marketing de Conteúdo para Nicho Específico", InvestmentLevel: "Baixo", TimeRequired: "Alto"}},
}

const (
	minOpportunities     = 2
	consultingHoursLimit = 15
)

func businessOpportunities(a domain.Answers) []domain.BusinessOpportunity {
	if len(a.Strings("businessInterests")) == 0 {
		return []domain.BusinessOpportunity{}
	}

	var out []domain.BusinessOpportunity
	for _, r := range opportunityByInterest {
		if a.Includes("businessInterests", r.interest) {
			out = append(out, r.opportunity)
		}
	}

	if hours, ok := a.Number("timeAvailability"); len(out) < minOpportunities && ok && hours > 0 && hours < consultingHoursLimit {
		out = append(out, domain.BusinessOpportunity{Name: "Consultoria Online", InvestmentLevel: "Baixo", TimeRequired: "Flexível"})
	}
	if len(out) < minOpportunities && (a.Equals("investmentCapacity", "high") || a.Equals("investmentCapacity", "very-high")) {
		out = append(out, domain.BusinessOpportunity{Name: "Franquia de Pequeno Porte", InvestmentLevel: "Alto", TimeRequired: "Médio"})
	}
	if out == nil {
		out = []domain.BusinessOpportunity{}
	}
	return out
}
