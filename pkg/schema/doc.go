// Package schema provides the typed contracts that answer values must satisfy.
//
// Every answer key declared by a question node carries a Type. Writes are
// checked when they happen, so a malformed value never reaches a resolver or
// the profile rules:
//
//	s := schema.Schema{
//	    "concentration": schema.OneOf("high-focus", "medium-focus", "low-focus"),
//	    "financialGoals": schema.Set("wealth-building", "passive-income"),
//	    "monthlyIncome": schema.Range(1000, 50000),
//	    "wakeupTime":    schema.TimeOfDay(),
//	}
//
//	canonical, declared, err := s.Check("monthlyIncome", 5000)
//
// Types that implement Coercer normalize loosely typed input first: decoded
// JSON lists become []string and every number becomes float64.
//
// The package depends only on the standard library.
package schema
