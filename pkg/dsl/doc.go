/*
Package dsl provides a fluent builder for question modules.

Nodes are declared in Go with type-checked options instead of hand-written
resolver functions. Branches are evaluated in declaration order and the first
match wins; Go adds an unconditional fallback.

Example usage:

	b := dsl.New("financial")

	b.Add("financialGoals").
		Question("Quais são seus principais objetivos financeiros?").
		MultiChoice("financialGoals", 1,
			dsl.Opt("wealth-building", "Construir patrimônio"),
			dsl.Opt("business-opportunity", "Oportunidade de negócio"),
		).
		Branch("patrimônio", dsl.Includes("financialGoals", "wealth-building"), "riskTolerance").
		Go("lifeGoals")

	b.Add("riskTolerance").
		SingleChoice("riskTolerance", dsl.Opt("moderate", "Moderado")).
		Go("lifeGoals")

	module, err := b.Build()
	// ... register with graph.New().Register(module)
*/
package dsl
