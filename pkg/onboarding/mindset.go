package onboarding

import (
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/dsl"
	"github.com/aretw0/jornada/pkg/graph"
)

const mindsetDefault = 5

// Mindset is the optional mindset track. It replaces the welcome node so the
// flow opens with the mindset questions and rejoins the personal module at
// the concentration question.
func Mindset() graph.Module {
	b := dsl.New("mindset")

	b.Add(NodeWelcome).
		Welcome().
		Title("Bem-vindo ao Life Goal Tracker").
		Describe("Antes de falarmos de metas, vamos entender como você encara disciplina, medo e desafios.").
		Go("mindsetConsistency")

	b.Add("mindsetConsistency").
		Question("Apareça, não importa o que - Sucesso não é sobre se sentir motivado todos os dias, é sobre aparecer consistentemente.").
		Describe("A disciplina supera emoções passageiras como motivação. Como você se classifica neste aspecto?").
		Mindset("consistencyMindset", "Quando não estou motivado...", mindsetDefault).
		Go("dailyHabitCommitment")

	b.Add("dailyHabitCommitment").
		Title("Compromisso com a Consistência").
		Describe("Defina uma prática diária pequena e inegociável que você se comprometerá a fazer todos os dias, não importa quão ocupado esteja:").
		Commit(domain.Commitment{
			ActionKey:    "dailyHabitCommitment",
			TimeframeKey: "dailyHabitTimeframe",
			Placeholder:  "Farei 10 minutos de leitura todos os dias",
			Timeframes:   []string{"7 dias", "30 dias", "90 dias"},
		}, "30 dias").
		Go("mindsetFear")

	b.Add("mindsetFear").
		Question("Faça com medo - O sucesso não é esperar até que você se sinta pronto, é agir apesar do medo.").
		Describe("Os maiores avanços vêm quando entramos no desconforto. Como você lida com situações que provocam medo ou ansiedade?").
		Mindset("fearlessMindset", "Quando sinto medo de uma nova situação...", mindsetDefault).
		Go("comfortZoneChallenge")

	b.Add("comfortZoneChallenge").
		Question("Identifique uma ação que você tem evitado por medo ou desconforto:").
		SingleChoice("comfortZoneChallenge",
			dsl.OptDesc("speak-public", "Falar em público", "Apresentações, reuniões ou networking"),
			dsl.OptDesc("financial-decision", "Tomar uma decisão financeira importante", "Investir, mudar de emprego ou iniciar um negócio"),
			dsl.OptDesc("difficult-conversation", "Ter uma conversa difícil", "Feedback, negociação ou resolução de conflitos"),
			dsl.OptDesc("learn-skill", "Aprender uma nova habilidade desafiadora", "Programação, idioma ou habilidade técnica"),
			dsl.OptDesc("share-work", "Compartilhar meu trabalho publicamente", "Publicar conteúdo, mostrar projetos ou pedir feedback"),
		).
		Go("mindsetComparison")

	b.Add("mindsetComparison").
		Question("Não olhe para os lados - Sua única competição é quem você era ontem.").
		Describe("Comparar-se com os outros é uma maneira infalível de perder o foco e a confiança. Como você lida com comparações?").
		Mindset("selfCompetitionMindset", "Quando vejo o sucesso dos outros...", mindsetDefault).
		Go("mindsetChallenges")

	b.Add("mindsetChallenges").
		Question("Escolha Difícil ou a Vida Escolherá por Você - Escolher difícil hoje cria um amanhã mais fácil.").
		Describe("Enfrentar desafios de frente desenvolve coragem e determinação. Como você lida com as escolhas difíceis?").
		Mindset("challengesMindset", "Quando confrontado com uma tarefa desafiadora...", mindsetDefault).
		Go("procrastinationChallenge")

	b.Add("procrastinationChallenge").
		Question("Qual tarefa importante você tem procrastinado que, se resolvida, traria benefícios significativos?").
		SingleChoice("procrastinationChallenge",
			dsl.OptDesc("organize-finances", "Organizar minhas finanças", "Planejar orçamento, revisar investimentos ou reduzir dívidas"),
			dsl.OptDesc("business-plan", "Desenvolver plano de negócios", "Estruturar ideias, pesquisar mercado ou definir estratégias"),
			dsl.OptDesc("improve-skills", "Aprimorar minhas habilidades técnicas", "Estudar, praticar ou buscar certificações"),
			dsl.OptDesc("health-routine", "Estabelecer rotina de saúde", "Exercícios, alimentação ou sono adequado"),
			dsl.OptDesc("network-connections", "Expandir rede de contatos", "Networking profissional ou parcerias estratégicas"),
		).
		Go("mindsetFailure")

	b.Add("mindsetFailure").
		Question("Errar o alvo não é um fracasso - O fracasso fornece feedback que afia sua estratégia.").
		Describe("Como você vê as situações em que não alcança seus objetivos iniciais?").
		Mindset("failureViewMindset", "Quando não atinjo um objetivo...", mindsetDefault).
		Go("mindsetReflection")

	b.Add("mindsetReflection").
		Question("Olhe para trás com frequência - Reflita sobre o progresso passado e deixe que ele o motive a continuar.").
		Describe("Reconhecer seu progresso promove gratidão e confiança. Com que frequência você reflete sobre suas conquistas?").
		Mindset("progressReflectionMindset", "Quanto à reflexão sobre minhas conquistas...", mindsetDefault).
		Go("dailyReflection")

	b.Add("dailyReflection").
		Question("Qual método de reflexão você se compromete a incorporar na sua rotina?").
		SingleChoice("dailyReflection",
			dsl.OptDesc("journal", "Diário de gratidão/conquistas", "Registrar 3 conquistas diárias, por menores que sejam"),
			dsl.OptDesc("weekly-review", "Revisão semanal estruturada", "Analisar progressos, aprendizados e ajustar planos"),
			dsl.OptDesc("data-tracking", "Acompanhamento de métricas", "Monitorar números-chave de finanças, negócios ou hábitos"),
			dsl.OptDesc("mentorship", "Feedback regular de mentor", "Conversas periódicas sobre progresso e desenvolvimento"),
			dsl.OptDesc("visual-progress", "Mapa visual de progresso", "Representação gráfica de conquistas e marcos"),
		).
		Go("mindsetListening")

	b.Add("mindsetListening").
		Question("Saiba quando ficar em silêncio - O silêncio cria espaço para observação e compreensão.").
		Describe("A força nem sempre é alta. Parar para ouvir e refletir constrói inteligência emocional. Como você lida com situações sociais?").
		Mindset("listeningMindset", "Em conversas importantes...", mindsetDefault).
		Go("mindsetUncertainty")

	b.Add("mindsetUncertainty").
		Question("Abrace o Desconhecido - Avanços geralmente vêm da exploração de territórios desconhecidos.").
		Describe("Pessoas de alto desempenho prosperam na incerteza. Como você reage a situações novas e ambíguas?").
		Mindset("uncertaintyMindset", "Diante de situações incertas ou ambíguas...", mindsetDefault).
		Go(NodeConcentration)

	return b.MustBuild()
}
