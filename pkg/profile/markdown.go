package profile

import (
	"fmt"
	"strings"

	"github.com/aretw0/jornada/pkg/domain"
)

// Markdown renders p as a Markdown document for terminal display.
func Markdown(p *domain.UserProfile) string {
	if p == nil {
		return ""
	}
	var b strings.Builder

	b.WriteString("# Seu perfil\n\n")
	fmt.Fprintf(&b, "- **Personalidade:** %s\n", p.PersonalityType)
	fmt.Fprintf(&b, "- **Perfil financeiro:** %s\n", p.FinancialProfile)
	fmt.Fprintf(&b, "- **Perfil empreendedor:** %s\n\n", p.EntrepreneurType)

	writeList(&b, "Foco recomendado", p.RecommendedFocus)

	if len(p.SuggestedHabits) > 0 {
		b.WriteString("## Hábitos sugeridos\n\n")
		b.WriteString("| Hábito | Categoria | Frequência |\n|---|---|---|\n")
		for _, h := range p.SuggestedHabits {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", h.Name, h.Category, h.Cadence)
		}
		b.WriteString("\n")
	}

	if len(p.SuggestedInvestments) > 0 {
		b.WriteString("## Alocação sugerida\n\n")
		b.WriteString("| Classe | Alocação | Risco |\n|---|---|---|\n")
		for _, inv := range p.SuggestedInvestments {
			fmt.Fprintf(&b, "| %s | %d%% | %s |\n", inv.AssetClass, inv.AllocationPercent, inv.RiskTier)
		}
		b.WriteString("\n")
	}

	if len(p.SuggestedBusinessOpportunities) > 0 {
		b.WriteString("## Oportunidades de negócio\n\n")
		b.WriteString("| Oportunidade | Investimento | Tempo |\n|---|---|---|\n")
		for _, o := range p.SuggestedBusinessOpportunities {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", o.Name, o.InvestmentLevel, o.TimeRequired)
		}
		b.WriteString("\n")
	}

	writeList(&b, "Pontos fortes", p.Strengths)
	writeList(&b, "Pontos de atenção", p.Weaknesses)
	writeList(&b, "Recomendações pessoais", p.Recommendations.Personal)
	writeList(&b, "Recomendações financeiras", p.Recommendations.Financial)
	writeList(&b, "Recomendações de carreira", p.Recommendations.Career)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
