package plan

import (
	"anim-mapper/internal/asset"
	"anim-mapper/internal/diagnostic"
	"anim-mapper/internal/match"
)

const (
	// FamilyPrefix is the locomotion name prefix that has reversed variants.
	FamilyPrefix = "Walk"
	// ReversedFamilyPrefix replaces FamilyPrefix in reversed locomotion names.
	ReversedFamilyPrefix = "WalkRev"
	// ReverseSuffix is appended to reversed general names.
	ReverseSuffix = "Rev"
)

// Plan is the output of the mapping pipeline for one asset.
type Plan struct {
	// Asset is the name the clips were loaded for.
	Asset string
	// Clips is the input snapshot.
	Clips []asset.Clip
	// Entries lists every accepted clip in input order.
	Entries []Entry
	// Locomotion maps walk-cycle output names to clip indexes.
	Locomotion *Mapping
	// General maps general action output names to clip indexes.
	General *Mapping
	// Diagnostics collects events reported while building.
	Diagnostics diagnostic.Diagnostics
}

// IsEmpty reports whether no clip was mapped.
func (p *Plan) IsEmpty() bool {
	return p.Locomotion.Len() == 0 && p.General.Len() == 0
}

// Mapping returns the mapping for class, or nil for Unmatched.
func (p *Plan) Mapping(class match.Class) *Mapping {
	switch class {
	case match.Locomotion:
		return p.Locomotion
	case match.General:
		return p.General
	default:
		return nil
	}
}

// Entry is a classified clip with its derived output name.
type Entry struct {
	Name     string
	Index    int
	Reversed bool
	Class    match.Class
	// Clip is the raw clip name.
	Clip string
	// Keyword is the table keyword that matched.
	Keyword string
}

// Transition is one descriptor handed to the animation player.
type Transition struct {
	Name  string `yaml:"name"`
	Index int    `yaml:"index"`
	// Next is the successor animation; empty means terminal.
	Next string `yaml:"next"`
	// Icon and Description are set for general descriptors only.
	Icon        string `yaml:"icon,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// IsTerminal reports whether the transition has no successor.
func (t Transition) IsTerminal() bool {
	return t.Next == ""
}
