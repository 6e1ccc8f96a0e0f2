package match

import "anim-mapper/internal/mapping"

// Result is the outcome of classifying one canonical key.
type Result struct {
	Class Class
	// Keyword is the table keyword that matched.
	Keyword string
	// Value is the canonical name the keyword maps to.
	Value string
}

// Classifier sorts canonical keys into locomotion and general actions.
type Classifier struct {
	isLocomotion Predicate
	locomotion   RuleSet[string]
	general      RuleSet[string]
}

// NewClassifier compiles the keyword tables into ordered rule sets.
func NewClassifier(t *mapping.Tables) *Classifier {
	return &Classifier{
		isLocomotion: ContainsAny(t.LocomotionIndicators...),
		locomotion:   compileTable(t.Locomotion),
		general:      compileTable(t.General),
	}
}

func compileTable(table mapping.KeywordTable) RuleSet[string] {
	rules := make(RuleSet[string], 0, len(table))
	for _, row := range table {
		rules = append(rules, Rule[string]{
			Label: row.Keyword,
			When:  Contains(row.Keyword),
			Then:  row.Name,
		})
	}

	return rules
}

// Classify resolves key against the tables. A key carrying a locomotion
// indicator is only ever resolved against the locomotion table, even when
// no locomotion row matches it.
func (c *Classifier) Classify(key string) Result {
	class, rules := General, c.general
	if c.isLocomotion(key) {
		class, rules = Locomotion, c.locomotion
	}

	rule, ok := rules.First(key)
	if !ok {
		return Result{Class: Unmatched}
	}

	return Result{Class: class, Keyword: rule.Label, Value: rule.Then}
}
