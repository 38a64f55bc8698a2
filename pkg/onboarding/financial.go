package onboarding

import (
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/dsl"
	"github.com/aretw0/jornada/pkg/graph"
)

var (
	wantsInvestments = dsl.IncludesAny("financialGoals", "wealth-building", "passive-income")
	wantsBusiness    = dsl.Includes("financialGoals", "business-opportunity")
)

// Financial covers goals, risk profile, current investments and cash flow.
// Investment goals open the investor questions; a business goal skips to the
// business module; anything else goes straight to life goals.
func Financial() graph.Module {
	b := dsl.New("financial")

	addFinancialGoals(b, NodeRiskTolerance)

	b.Add(NodeRiskTolerance).
		Question("Qual é sua tolerância a risco em investimentos?").
		SingleChoice("riskTolerance",
			dsl.OptDesc("conservative", "Conservador", "Prefiro segurança mesmo com retornos menores"),
			dsl.OptDesc("moderate", "Moderado", "Equilíbrio entre segurança e oportunidades de crescimento"),
			dsl.OptDesc("aggressive", "Agressivo", "Aceito volatilidade em busca de retornos maiores"),
		).
		Go("investmentHorizon")

	b.Add("investmentHorizon").
		Question("Qual é seu horizonte de investimento?").
		SingleChoice("investmentHorizon",
			dsl.OptDesc("short-term", "Curto prazo (até 2 anos)", "Necessito de liquidez e acesso rápido aos recursos"),
			dsl.OptDesc("medium-term", "Médio prazo (2-5 anos)", "Posso esperar alguns anos para resultados melhores"),
			dsl.OptDesc("long-term", "Longo prazo (mais de 5 anos)", "Foco em crescimento consistente ao longo do tempo"),
		).
		Go("currentInvestments")

	b.Add("currentInvestments").
		Question("Quais tipos de investimentos você já possui?").
		MultiChoice("currentInvestments", 0,
			dsl.Opt("savings", "Poupança ou CDB"),
			dsl.Opt("stocks", "Ações"),
			dsl.Opt("funds", "Fundos de investimento"),
			dsl.Opt("reits", "Fundos imobiliários"),
			dsl.Opt("crypto", "Criptomoedas"),
			dsl.Opt("real-estate", "Imóveis"),
			dsl.Opt("business", "Participação em negócios"),
			dsl.Opt("none", "Ainda não possuo investimentos"),
		).
		Go(NodeFinancialDetails)

	b.Add(NodeFinancialDetails).
		Title("Detalhes Financeiros").
		Sliders(
			domain.Slider{Key: "monthlyIncome", Label: "Renda mensal aproximada", Min: 1000, Max: 50000, Step: 1000, Default: 5000, Unit: "R$"},
			domain.Slider{Key: "monthlySavings", Label: "Quanto consegue poupar por mês", Min: 0, Max: 20000, Step: 500, Default: 1000, Unit: "R$"},
		).
		Branch("negócios", wantsBusiness, NodeBusinessInterests).
		Go(NodeLifeGoals)

	return b.MustBuild()
}

// addFinancialGoals adds the goals question. Investment goals continue at
// investments.
func addFinancialGoals(b *dsl.Builder, investments string) {
	b.Add(NodeFinancialGoals).
		Question("Quais são seus principais objetivos financeiros?").
		MultiChoice("financialGoals", 1,
			dsl.OptDesc("wealth-building", "Acumular patrimônio", "Crescimento sustentável com estratégia de longo prazo"),
			dsl.OptDesc("passive-income", "Gerar renda passiva", "Criar fluxos de receita recorrentes com investimentos"),
			dsl.OptDesc("specific-goal", "Economizar para objetivo específico", "Como imóvel, aposentadoria ou educação"),
			dsl.OptDesc("business-opportunity", "Identificar oportunidades de negócio", "Encontrar e explorar novos empreendimentos"),
			dsl.OptDesc("debt-reduction", "Reduzir dívidas", "Eliminar financiamentos e empréstimos"),
		).
		Branch("investimentos", wantsInvestments, investments).
		Branch("negócios", wantsBusiness, NodeBusinessInterests).
		Go(NodeLifeGoals)
}
