package match

import "strings"

// Predicate tests a canonical key.
type Predicate func(key string) bool

// Contains matches keys containing sub.
func Contains(sub string) Predicate {
	return func(key string) bool {
		return strings.Contains(key, sub)
	}
}

// ContainsAny matches keys containing at least one of subs.
func ContainsAny(subs ...string) Predicate {
	return func(key string) bool {
		for _, s := range subs {
			if strings.Contains(key, s) {
				return true
			}
		}

		return false
	}
}

// Rule pairs a predicate with the result it yields.
type Rule[T any] struct {
	// Label identifies the rule in diagnostics (the table keyword).
	Label string
	When  Predicate
	Then  T
}

// RuleSet is an ordered rule list. Evaluation stops at the first match,
// so declaration order is the tie-break between overlapping rules.
type RuleSet[T any] []Rule[T]

// First returns the first rule whose predicate accepts key.
func (rs RuleSet[T]) First(key string) (Rule[T], bool) {
	for _, r := range rs {
		if r.When(key) {
			return r, true
		}
	}

	return Rule[T]{}, false
}
