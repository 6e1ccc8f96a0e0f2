package mapping

import (
	"fmt"

	"anim-mapper/internal/diagnostic"
)

// Validate checks the tables for rows that would break classification.
// An empty keyword is a substring of every key and would swallow all
// later rows, so it is an error. A repeated keyword can never win and
// is reported as a warning.
func Validate(t *Tables) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if t == nil {
		res.AddError("tables_is_nil", "tables are nil", "", "")
		return res
	}

	if len(t.LocomotionIndicators) == 0 {
		res.AddWarning(diagnostic.CodeInvalidTable, "no locomotion indicators; every clip is general", TableIndicators, "")
	}

	for i, ind := range t.LocomotionIndicators {
		if ind == "" {
			res.AddError(diagnostic.CodeInvalidTable, fmt.Sprintf("indicator %d is empty", i), TableIndicators, "")
		}
	}

	validateKeywords(res, TableLocomotion, t.Locomotion)
	validateKeywords(res, TableGeneral, t.General)
	validateSuccessors(res, TableSuccessors, t.Successors)
	validateSuccessors(res, TableGeneralSuccessors, t.GeneralSuccessors)

	seenUI := map[string]struct{}{}

	for i, u := range t.UI {
		if u.Name == "" {
			res.AddError(diagnostic.CodeInvalidTable, fmt.Sprintf("ui row %d has no name", i), TableUI, "")
			continue
		}

		if _, ok := seenUI[u.Name]; ok {
			res.AddWarning(diagnostic.CodeInvalidTable, fmt.Sprintf("duplicate ui row %q", u.Name), TableUI, "")
			continue
		}

		seenUI[u.Name] = struct{}{}
	}

	return res
}

func validateKeywords(res *diagnostic.Diagnostics, table string, rules KeywordTable) {
	seen := map[string]int{}

	for i, r := range rules {
		if r.Keyword == "" {
			res.AddError(diagnostic.CodeInvalidTable, fmt.Sprintf("row %d has an empty keyword", i), table, "")
			continue
		}

		if r.Name == "" {
			res.AddError(diagnostic.CodeInvalidTable, fmt.Sprintf("keyword %q has no name", r.Keyword), table, "")
		}

		if first, ok := seen[r.Keyword]; ok {
			res.AddWarning(diagnostic.CodeDuplicateKeyword,
				fmt.Sprintf("keyword %q at row %d is shadowed by row %d", r.Keyword, i, first), table, "")

			continue
		}

		seen[r.Keyword] = i
	}
}

func validateSuccessors(res *diagnostic.Diagnostics, table string, rows SuccessorTable) {
	for i, s := range rows {
		if s.Name == "" {
			res.AddError(diagnostic.CodeInvalidTable, fmt.Sprintf("row %d has no name", i), table, "")
		}
	}
}
