package onboarding

import (
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/dsl"
	"github.com/aretw0/jornada/pkg/graph"
)

// Commitment step ids. Each id is also the answer key of the action.
const (
	NodeFinancialCommitment = "financialHabitCommitment"
	NodeBusinessCommitment  = "businessHabitCommitment"
	NodeLearningCommitment  = "learningHabitCommitment"
)

// Commitments adds an action-commitment step to the financial, business and
// learning tracks. It redefines the questions that lead into each step, so it
// must be registered after Classic.
func Commitments() graph.Module {
	b := dsl.New("commitments")

	addFinancialGoals(b, NodeFinancialCommitment)
	b.Add(NodeFinancialCommitment).
		Title("Compromisso com Hábito Financeiro").
		Describe("Defina um hábito financeiro específico que você se comprometerá a manter:").
		Commit(domain.Commitment{
			ActionKey:    NodeFinancialCommitment,
			TimeframeKey: "financialHabitTimeframe",
			Placeholder:  "Separar 20% da minha renda para investimentos antes de qualquer gasto",
			Timeframes:   []string{"3 meses", "6 meses", "12 meses"},
		}, "12 meses").
		Go(NodeRiskTolerance)

	addBusinessInterests(b, NodeBusinessCommitment)
	b.Add(NodeBusinessCommitment).
		Title("Compromisso com Desenvolvimento de Negócio").
		Describe("Defina uma ação específica para desenvolver seu lado empreendedor:").
		Commit(domain.Commitment{
			ActionKey:    NodeBusinessCommitment,
			TimeframeKey: "businessHabitTimeframe",
			Placeholder:  "Dedicar 5 horas semanais para pesquisar e validar ideias de negócio",
			Timeframes:   []string{"30 dias", "60 dias", "90 dias"},
		}, "90 dias").
		Go(NodeEntrepreneurProfile)

	addLearning(b, NodeLearningCommitment)
	b.Add(NodeLearningCommitment).
		Title("Compromisso com Aprendizado Contínuo").
		Describe("Defina uma rotina específica de aprendizado que você se comprometerá a seguir:").
		Commit(domain.Commitment{
			ActionKey:    NodeLearningCommitment,
			TimeframeKey: "learningHabitTimeframe",
			Placeholder:  "Estudar uma habilidade relevante por pelo menos 30 minutos diários",
			Timeframes:   []string{"30 dias", "60 dias", "90 dias"},
		}, "60 dias").
		Go(NodeProfile)

	return b.MustBuild()
}
