package onboarding

import (
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/dsl"
	"github.com/aretw0/jornada/pkg/graph"
)

// Personal covers interests, focus, lifestyle, energy and daily routine.
func Personal() graph.Module {
	b := dsl.New("personal")

	b.Add(NodeWelcome).
		Welcome().
		Title("Bem-vindo ao Life Goal Tracker").
		Describe("Vamos personalizar sua experiência para ajudá-lo a alcançar seus objetivos pessoais, financeiros e empreendedores.").
		Go(NodePersonalInterests)

	b.Add(NodePersonalInterests).
		Question("Quais áreas da sua vida você deseja desenvolver?").
		MultiChoice("personalInterests", 1,
			dsl.Opt("health", "Saúde e bem-estar"),
			dsl.Opt("career", "Carreira e trabalho"),
			dsl.Opt("finances", "Finanças e investimentos"),
			dsl.Opt("relationships", "Relacionamentos"),
			dsl.Opt("personal-growth", "Crescimento pessoal"),
			dsl.Opt("creativity", "Criatividade e hobbies"),
			dsl.Opt("business", "Empreendimentos e negócios"),
			dsl.Opt("community", "Comunidade e impacto social"),
		).
		Go(NodeConcentration)

	b.Add(NodeConcentration).
		Question("Você acha difícil se concentrar em tarefas por longos períodos?").
		SingleChoice("concentration",
			dsl.OptDesc("high-focus", "Não, consigo me concentrar facilmente", "Mantenho foco mesmo em ambiente com distrações"),
			dsl.OptDesc("medium-focus", "Às vezes perco meu foco", "Consigo focar em tarefas interessantes, mas me distraio com outras"),
			dsl.OptDesc("low-focus", "Sim, me distraio facilmente", "Tenho dificuldade em manter concentração por longos períodos"),
		).
		Go("lifestyle")

	b.Add("lifestyle").
		Question("Quão satisfeito você está com seu estilo de vida atual?").
		SingleChoice("lifestyle",
			dsl.OptDesc("very-satisfied", "Bastante satisfeito", "Sinto-me muito ativo e com energia regularmente"),
			dsl.OptDesc("somewhat-satisfied", "Moderadamente satisfeito", "Está bom, mas gostaria de ver algumas melhorias"),
			dsl.OptDesc("not-satisfied", "Pouco satisfeito", "Gostaria de ver mudanças significativas na minha rotina"),
		).
		Go("energy")

	b.Add("energy").
		Question("Como é seu nível de energia ao longo do dia?").
		SingleChoice("energy",
			dsl.OptDesc("high-energy", "Alto e constante", "Mantenho energia consistente durante todo o dia"),
			dsl.OptDesc("medium-energy", "Variado com picos", "Tenho momentos de alta energia e outros de baixa"),
			dsl.OptDesc("low-energy", "Diminui progressivamente", "Começo com boa energia que vai reduzindo ao longo do dia"),
		).
		Go("dailyRoutine")

	b.Add("dailyRoutine").
		Title("Sua rotina diária").
		TimeRange(
			domain.TimePicker{Key: "wakeupTime", Label: "Que horas você costuma acordar?", Default: "07:00"},
			domain.TimePicker{Key: "sleepTime", Label: "Que horas você costuma dormir?", Default: "23:00"},
		).
		Go(NodeFinancialGoals)

	return b.MustBuild()
}
