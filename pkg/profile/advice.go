package profile

import (
	"fmt"
	"time"

	"github.com/aretw0/jornada/pkg/domain"
	"github.com/shopspring/decimal"
)

const minSleepHours = 7

var learningAreaNames = map[string]string{
	"finance":    "finanças e investimentos",
	"tech":       "tecnologia e programação",
	"business":   "empreendedorismo e gestão",
	"marketing":  "marketing e vendas",
	"health":     "saúde e bem-estar",
	"leadership": "liderança e comunicação",
	"languages":  "idiomas",
	"creativity": "criatividade e arte",
}

var businessAreaNames = map[string]string{
	"tech":        "tecnologia e SaaS",
	"ecommerce":   "e-commerce",
	"content":     "criação de conteúdo",
	"services":    "serviços e consultoria",
	"education":   "educação e treinamentos",
	"real-estate": "negócios imobiliários",
	"physical":    "produtos físicos",
	"franchise":   "franquias",
}

func displayName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}

// sleepHours estimates the hours between sleep and wake-up using whole hours
// only, wrapping around midnight.
func sleepHours(a domain.Answers) (int, bool) {
	wake, err := time.Parse("15:04", a.String("wakeupTime"))
	if err != nil {
		return 0, false
	}
	sleep, err := time.Parse("15:04", a.String("sleepTime"))
	if err != nil {
		return 0, false
	}
	return (24 - sleep.Hour() + wake.Hour()) % 24, true
}

func personalAdvice(a domain.Answers) []string {
	var out []string
	if a.Includes("personalInterests", "health") {
		out = append(out, "Estabeleça uma rotina de exercícios de 30 minutos por dia, 5 vezes por semana")
	}
	if a.Equals("concentration", "low-focus") || a.Equals("concentration", "medium-focus") {
		out = append(out, "Experimente técnicas de Pomodoro (25 minutos de foco seguidos de 5 minutos de pausa) para melhorar sua concentração")
	}
	if a.Equals("energy", "low-energy") {
		out = append(out, "Considere ajustar sua alimentação e incluir pequenas pausas ativas durante o dia para manter os níveis de energia")
	}
	if hours, ok := sleepHours(a); ok && hours < minSleepHours {
		out = append(out, "Tente aumentar seu tempo de sono para pelo menos 7 horas por noite para melhorar sua saúde e produtividade")
	}
	if areas := a.Strings("learningAreas"); len(areas) > 0 {
		out = append(out, fmt.Sprintf("Dedique 30 minutos diários para estudos em %s", displayName(learningAreaNames, areas[0])))
	}
	if len(out) == 0 {
		out = append(out, "Defina metas SMART (Específicas, Mensuráveis, Atingíveis, Relevantes e Temporais) para suas principais áreas de interesse")
	}
	return out
}

var (
	lowSavingsBand  = decimal.NewFromInt(15)
	highSavingsBand = decimal.NewFromInt(25)
)

func financialAdvice(a domain.Answers, rate savingsRate) []string {
	var out []string
	if a.Includes("financialGoals", "wealth-building") {
		out = append(out, "Considere aumentar sua exposição a investimentos de crescimento a longo prazo, como ações e fundos indexados")
	}
	if a.Includes("financialGoals", "passive-income") {
		out = append(out, "Diversifique suas fontes de renda passiva através de dividendos, aluguéis e juros compostos")
	}
	if a.Includes("financialGoals", "debt-reduction") {
		out = append(out, "Priorize o pagamento de dívidas com taxas de juros mais altas primeiro")
	}

	switch a.String("riskTolerance") {
	case "conservative":
		out = append(out, "Mantenha um portfólio mais conservador com títulos de renda fixa, mas inclua uma pequena alocação em ativos de crescimento")
	case "aggressive":
		out = append(out, "Aproveite sua tolerância a risco para buscar retornos mais altos, mas mantenha uma reserva de emergência sólida")
	}

	if a.Equals("investmentHorizon", "long-term") {
		out = append(out, "Aproveite o poder dos juros compostos: considere reinvestir dividendos e juros para maximizar seu crescimento patrimonial")
	}

	if rate.known {
		switch {
		case rate.value.LessThan(lowSavingsBand):
			out = append(out, fmt.Sprintf("Tente aumentar gradualmente sua taxa de poupança mensal de %s%% para pelo menos 15%%", rate))
		case rate.value.LessThan(highSavingsBand):
			out = append(out, fmt.Sprintf("Sua taxa de poupança de %s%% é boa, mas considere aumentar para 25%% para acelerar seus objetivos financeiros", rate))
		}
	}

	if len(out) == 0 {
		out = append(out, "Estabeleça um orçamento detalhado e acompanhe seus gastos regularmente para otimizar suas finanças")
	}
	return out
}

var entrepreneurAdvice = map[string]string{
	"visionary":   "Dedique tempo para atividades criativas e estratégicas que alimentem sua visão de longo prazo",
	"builder":     "Foque em desenvolver sistemas e processos que permitam escalabilidade em seus empreendimentos",
	"specialist":  "Invista no aprofundamento de sua expertise técnica e considere formas de monetizá-la através de consultorias ou criação de conteúdo",
	"opportunist": "Mantenha-se atualizado sobre tendências de mercado e estabeleça uma rede de contatos para identificar oportunidades emergentes",
}

const (
	sideProjectHours = 10
	ambitiousHours   = 30
)

func careerAdvice(a domain.Answers) []string {
	var out []string
	if interests := a.Strings("businessInterests"); len(interests) > 0 {
		out = append(out, fmt.Sprintf("Explore oportunidades no setor de %s que se alinhem com seu perfil empreendedor", displayName(businessAreaNames, interests[0])))
	}
	if advice, ok := entrepreneurAdvice[a.String("entrepreneurProfile")]; ok {
		out = append(out, advice)
	}

	if hours, ok := a.Number("timeAvailability"); ok && hours > 0 {
		switch {
		case hours < sideProjectHours:
			out = append(out, "Comece com projetos paralelos que possam ser gerenciados com sua disponibilidade atual de tempo")
		case hours >= ambitiousHours:
			out = append(out, "Com sua significativa disponibilidade de tempo, considere iniciar projetos mais ambiciosos ou acelerar o crescimento de iniciativas existentes")
		}
	}

	if a.Includes("lifeGoals", "own-business") {
		out = append(out, "Desenvolva um plano de negócios detalhado para sua ideia empreendedora e valide-a com potenciais clientes antes de investir recursos significativos")
	}
	if a.Includes("lifeGoals", "career-growth") {
		out = append(out, "Identifique as habilidades mais valorizadas em sua área e crie um plano de desenvolvimento profissional focado nelas")
	}

	if len(out) == 0 {
		out = append(out, "Busque equilíbrio entre crescimento profissional e qualidade de vida, alinhando suas atividades com seus valores fundamentais")
	}
	return out
}
