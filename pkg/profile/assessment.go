package profile

import (
	"math"

	"github.com/aretw0/jornada/pkg/domain"
	"github.com/shopspring/decimal"
)

var (
	strongSavingsRate = decimal.NewFromInt(20)
	weakSavingsRate   = decimal.NewFromInt(10)
	hundred           = decimal.NewFromInt(100)
)

// savingsRate is monthly savings as a percentage of monthly income. It is
// unknown when income is missing or not positive, or when either amount is
// not finite.
type savingsRate struct {
	value decimal.Decimal
	known bool
}

func savingsRateOf(a domain.Answers) savingsRate {
	income, ok := a.Number("monthlyIncome")
	if !ok || income <= 0 {
		return savingsRate{}
	}
	savings, ok := a.Number("monthlySavings")
	if !ok || !finite(income) || !finite(savings) {
		return savingsRate{}
	}
	rate := decimal.NewFromFloat(savings).Div(decimal.NewFromFloat(income)).Mul(hundred)
	return savingsRate{value: rate, known: true}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// String renders the rate with one decimal place.
func (r savingsRate) String() string {
	return r.value.StringFixed(1)
}

func strengths(a domain.Answers, rate savingsRate) []string {
	var out []string
	if a.Equals("concentration", "high-focus") {
		out = append(out, "Alta capacidade de concentração")
	}
	if a.Equals("energy", "high-energy") {
		out = append(out, "Altos níveis de energia ao longo do dia")
	}
	if a.Includes("financialGoals", "wealth-building") {
		out = append(out, "Orientação para construção de patrimônio a longo prazo")
	}
	if rate.known && rate.value.GreaterThanOrEqual(strongSavingsRate) {
		out = append(out, "Excelente taxa de poupança mensal")
	}
	if len(out) == 0 {
		out = append(out, "Adaptabilidade a diferentes situações")
	}
	return out
}

func weaknesses(a domain.Answers, rate savingsRate) []string {
	var out []string
	if a.Equals("concentration", "low-focus") {
		out = append(out, "Dificuldade em manter foco por longos períodos")
	}
	if a.Equals("energy", "low-energy") {
		out = append(out, "Tendência a perder energia ao longo do dia")
	}
	if a.Equals("lifestyle", "not-satisfied") {
		out = append(out, "Insatisfação com o estilo de vida atual")
	}
	if rate.known && rate.value.LessThan(weakSavingsRate) {
		out = append(out, "Taxa de poupança mensal abaixo do ideal")
	}
	if len(out) == 0 {
		out = append(out, "Possível dificuldade em estabelecer prioridades claras")
	}
	return out
}
