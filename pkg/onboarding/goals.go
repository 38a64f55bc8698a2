package onboarding

import (
	"github.com/aretw0/jornada/pkg/dsl"
	"github.com/aretw0/jornada/pkg/graph"
)

// Goals covers life goals and learning areas and ends at the profile node.
func Goals() graph.Module {
	b := dsl.New("goals")

	b.Add(NodeLifeGoals).
		Question("Quais são seus principais objetivos de vida para os próximos anos?").
		MultiChoice("lifeGoals", 1,
			dsl.Opt("financial-freedom", "Liberdade financeira"),
			dsl.Opt("career-growth", "Crescimento na carreira"),
			dsl.Opt("own-business", "Ter meu próprio negócio"),
			dsl.Opt("travel", "Viajar e conhecer novos lugares"),
			dsl.Opt("family", "Construir uma família"),
			dsl.Opt("health", "Melhorar saúde e bem-estar"),
			dsl.Opt("education", "Continuar estudando"),
			dsl.Opt("house", "Adquirir casa própria"),
		).
		Go(NodeLearning)

	addLearning(b, NodeProfile)

	b.Add(NodeProfile).
		Profile().
		Title("Criando seu perfil personalizado").
		Describe("Analisando suas respostas e gerando recomendações...")

	return b.MustBuild()
}

func addLearning(b *dsl.Builder, next string) {
	b.Add(NodeLearning).
		Question("Quais áreas de conhecimento você gostaria de desenvolver?").
		MultiChoice("learningAreas", 1,
			dsl.Opt("finance", "Finanças e investimentos"),
			dsl.Opt("tech", "Tecnologia e programação"),
			dsl.Opt("business", "Empreendedorismo e gestão"),
			dsl.Opt("marketing", "Marketing e vendas"),
			dsl.Opt("health", "Saúde e bem-estar"),
			dsl.Opt("leadership", "Liderança e comunicação"),
			dsl.Opt("languages", "Idiomas"),
			dsl.Opt("creativity", "Criatividade e arte"),
		).
		Go(next)
}
