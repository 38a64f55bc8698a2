package onboarding

import (
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/dsl"
	"github.com/aretw0/jornada/pkg/graph"
)

// Business covers business interests, entrepreneur profile, available time
// and starting capital.
func Business() graph.Module {
	b := dsl.New("business")

	addBusinessInterests(b, NodeEntrepreneurProfile)

	b.Add(NodeEntrepreneurProfile).
		Question("Qual perfil empreendedor mais combina com você?").
		SingleChoice("entrepreneurProfile",
			dsl.OptDesc("visionary", "Visionário", "Prefiro desenvolver ideias inovadoras e revolucionárias"),
			dsl.OptDesc("builder", "Construtor", "Gosto de criar sistemas e negócios sustentáveis e escaláveis"),
			dsl.OptDesc("specialist", "Especialista", "Prefiro me aprofundar em uma área específica de conhecimento"),
			dsl.OptDesc("opportunist", "Oportunista", "Gosto de identificar e explorar oportunidades de mercado"),
		).
		Go("timeAvailability")

	b.Add("timeAvailability").
		Title("Disponibilidade de Tempo").
		Describe("Quanto tempo você teria disponível semanalmente para se dedicar a um novo negócio?").
		Sliders(domain.Slider{Key: "timeAvailability", Min: 1, Max: 40, Step: 1, Default: 10, Unit: "horas/semana"}).
		Go("investmentCapacity")

	b.Add("investmentCapacity").
		Question("Qual seria sua capacidade de investimento inicial em um negócio?").
		SingleChoice("investmentCapacity",
			dsl.OptDesc("low", "Até R$ 5.000", "Prefiro começar com pouco capital"),
			dsl.OptDesc("medium", "R$ 5.000 a R$ 20.000", "Posso investir um valor moderado"),
			dsl.OptDesc("high", "R$ 20.000 a R$ 50.000", "Tenho capital considerável disponível"),
			dsl.OptDesc("very-high", "Acima de R$ 50.000", "Estou preparado para um investimento significativo"),
		).
		Go(NodeLifeGoals)

	return b.MustBuild()
}

func addBusinessInterests(b *dsl.Builder, next string) {
	b.Add(NodeBusinessInterests).
		Question("Quais áreas de negócio mais te interessam?").
		MultiChoice("businessInterests", 1,
			dsl.Opt("tech", "Tecnologia e SaaS"),
			dsl.Opt("ecommerce", "E-commerce"),
			dsl.Opt("content", "Criação de conteúdo"),
			dsl.Opt("services", "Serviços e consultoria"),
			dsl.Opt("education", "Educação e treinamentos"),
			dsl.Opt("real-estate", "Negócios imobiliários"),
			dsl.Opt("physical", "Produtos físicos"),
			dsl.Opt("franchise", "Franquias"),
		).
		Go(next)
}
