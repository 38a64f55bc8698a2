package dsl

import "github.com/aretw0/jornada/pkg/domain"

// Predicate decides whether a branch applies to the current answers.
type Predicate func(domain.Answers) bool

// Equals matches a single-choice answer.
func Equals(key, value string) Predicate {
	return func(a domain.Answers) bool { return a.Equals(key, value) }
}

// Includes matches a multi-choice answer containing value.
func Includes(key, value string) Predicate {
	return func(a domain.Answers) bool { return a.Includes(key, value) }
}

// IncludesAny matches a multi-choice answer containing any of values.
func IncludesAny(key string, values ...string) Predicate {
	return func(a domain.Answers) bool { return a.IncludesAny(key, values...) }
}

// AtLeast matches a numeric answer >= n.
func AtLeast(key string, n float64) Predicate {
	return func(a domain.Answers) bool {
		v, ok := a.Number(key)
		return ok && v >= n
	}
}

// Below matches a numeric answer < n.
func Below(key string, n float64) Predicate {
	return func(a domain.Answers) bool {
		v, ok := a.Number(key)
		return ok && v < n
	}
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(a domain.Answers) bool { return !p(a) }
}

// All matches when every predicate matches.
func All(ps ...Predicate) Predicate {
	return func(a domain.Answers) bool {
		for _, p := range ps {
			if !p(a) {
				return false
			}
		}
		return true
	}
}
