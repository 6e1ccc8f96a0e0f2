package plan

import (
	"fmt"

	"anim-mapper/internal/diagnostic"
	"anim-mapper/internal/mapping"
)

// Transitions returns the locomotion and general descriptors of p.
func Transitions(p *Plan, tables *mapping.Tables) (locomotion, general []Transition) {
	return LocomotionTransitions(p.Locomotion, tables), GeneralTransitions(p.General, tables)
}

// LocomotionTransitions emits every entry of m in insertion order. Names
// without a successor row are terminal.
func LocomotionTransitions(m *Mapping, tables *mapping.Tables) []Transition {
	out := make([]Transition, 0, m.Len())

	for name, idx := range m.All {
		next, _ := tables.Successors.Lookup(name)
		out = append(out, Transition{Name: name, Index: idx, Next: next})
	}

	return out
}

// GeneralTransitions emits the entries of m that have UI metadata, in
// insertion order. Each returns to tables.ReturnTo unless it has a
// general successor row.
func GeneralTransitions(m *Mapping, tables *mapping.Tables) []Transition {
	out := make([]Transition, 0, m.Len())

	for name, idx := range m.All {
		ui, ok := tables.UI.Lookup(name)
		if !ok {
			continue
		}

		next, ok := tables.GeneralSuccessors.Lookup(name)
		if !ok {
			next = tables.ReturnTo
		}

		out = append(out, Transition{
			Name:        name,
			Index:       idx,
			Next:        next,
			Icon:        ui.Icon,
			Description: ui.Description,
		})
	}

	return out
}

// Check reports successors that name no entry of either mapping. The
// player would stall on such an edge; generation itself does not care.
func Check(p *Plan, tables *mapping.Tables) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	loco, general := Transitions(p, tables)

	check := func(table string, ts []Transition) {
		for _, t := range ts {
			if t.IsTerminal() || p.Locomotion.Has(t.Next) || p.General.Has(t.Next) {
				continue
			}

			res.AddWarning(diagnostic.CodeDanglingSuccessor,
				fmt.Sprintf("%s -> %s: successor is not mapped", t.Name, t.Next), table, "")
		}
	}

	check(mapping.TableSuccessors, loco)
	check(mapping.TableGeneralSuccessors, general)

	return res
}
