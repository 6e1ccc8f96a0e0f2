package mapping

// Table names used in diagnostics.
const (
	TableLocomotion        = "locomotion"
	TableGeneral           = "general"
	TableIndicators        = "locomotion_indicators"
	TableSuccessors        = "successors"
	TableGeneralSuccessors = "general_successors"
	TableUI                = "ui"
)

// KeywordRule maps a keyword substring of a canonical clip key to a
// canonical output name.
type KeywordRule struct {
	Keyword string `yaml:"keyword"`
	Name    string `yaml:"name"`
}

// KeywordTable is an ordered list of keyword rules. Order is the tie-break.
type KeywordTable []KeywordRule

// Successor is one edge of the transition graph. An empty Next is terminal.
type Successor struct {
	Name string `yaml:"name"`
	Next string `yaml:"next,omitempty"`
}

// SuccessorTable is a list of successor edges.
type SuccessorTable []Successor

// Lookup returns the successor of name and whether name has a row.
func (t SuccessorTable) Lookup(name string) (string, bool) {
	for _, s := range t {
		if s.Name == name {
			return s.Next, true
		}
	}

	return "", false
}

// UIInfo is the player-facing metadata of a general animation.
type UIInfo struct {
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

// UITable is the list of general animations exposed to the player UI.
type UITable []UIInfo

// Lookup returns the UI metadata for name.
func (t UITable) Lookup(name string) (UIInfo, bool) {
	for _, u := range t {
		if u.Name == name {
			return u, true
		}
	}

	return UIInfo{}, false
}

// Tables holds every table used by the pipeline.
type Tables struct {
	Version string `yaml:"version"`
	// LocomotionIndicators select the locomotion table for a key.
	LocomotionIndicators []string `yaml:"locomotion_indicators"`
	// Locomotion is the ordered walk-cycle keyword table.
	Locomotion KeywordTable `yaml:"locomotion"`
	// General is the ordered general-action keyword table.
	General KeywordTable `yaml:"general"`
	// Successors resolves the next animation of locomotion entries.
	Successors SuccessorTable `yaml:"successors"`
	// GeneralSuccessors overrides ReturnTo for specific general entries.
	GeneralSuccessors SuccessorTable `yaml:"general_successors"`
	// ReturnTo is the successor of every other general entry.
	ReturnTo string `yaml:"return_to"`
	// UI filters and decorates the general descriptors.
	UI UITable `yaml:"ui"`
}

// Default returns the built-in tables.
func Default() *Tables {
	return &Tables{
		Version:              "1",
		LocomotionIndicators: []string{"walk", "idle", "default"},
		Locomotion: KeywordTable{
			{Keyword: "walk01_loop", Name: "WalkLoop"},
			{Keyword: "walk01_start", Name: "WalkStart"},
			{Keyword: "walk01_end", Name: "WalkEnd"},
			{Keyword: "walk-relaxed_loop", Name: "WalkRelaxedLoop"},
			{Keyword: "walk-relaxed_start", Name: "WalkRelaxedStart"},
			{Keyword: "walk-relaxed_end", Name: "WalkRelaxedEnd"},
			{Keyword: "idle", Name: "Idle"},
			{Keyword: "default", Name: "Default"},
		},
		General: KeywordTable{
			{Keyword: "crouch_walk", Name: "CrouchWalk"},
			{Keyword: "aerobic-dance", Name: "Dance"},
			{Keyword: "cc02_sideshoot", Name: "Shoot"},
			{Keyword: "dual_gun_muzdn_mov_cool_shoot", Name: "CoolShoot"},
			{Keyword: "hold_gun_break_door", Name: "BreakDoor"},
			{Keyword: "hold_gun_fastrun_forward_end", Name: "FastRunEnd"},
			{Keyword: "hold_gun_fastrun_forward_loop", Name: "FastRunLoop"},
			{Keyword: "hold_gun_fastrun_forward_start", Name: "FastRunStart"},
			{Keyword: "hold_gun_shooting", Name: "GunShoot"},
			{Keyword: "dual_gun_draw_gun_behind_back", Name: "DrawGun"},
			{Keyword: "stand-to-sit", Name: "StandToSit"},
		},
		Successors: SuccessorTable{
			{Name: "WalkStart", Next: "WalkLoop"},
			{Name: "WalkLoop"},
			{Name: "WalkEnd", Next: "Idle"},
			{Name: "WalkRevStart", Next: "WalkRevLoop"},
			{Name: "WalkRevLoop"},
			{Name: "WalkRevEnd", Next: "Idle"},
			{Name: "WalkRelaxedStart", Next: "WalkRelaxedLoop"},
			{Name: "WalkRelaxedLoop"},
			{Name: "WalkRelaxedEnd", Next: "Idle"},
			{Name: "WalkRevRelaxedStart", Next: "WalkRevRelaxedLoop"},
			{Name: "WalkRevRelaxedLoop"},
			{Name: "WalkRevRelaxedEnd", Next: "Idle"},
			{Name: "Idle"},
			{Name: "Default", Next: "Idle"},
		},
		// StandToSit loops into its own reverse.
		GeneralSuccessors: SuccessorTable{
			{Name: "StandToSit", Next: "StandToSitRev"},
		},
		ReturnTo: "Idle",
		UI: UITable{
			{Name: "Idle", Icon: "🧍", Description: "Default standing pose"},
			{Name: "CrouchWalk", Icon: "🤲", Description: "Crouch walk"},
			{Name: "CrouchWalkRev", Icon: "🤲", Description: "Crouch walk (reverse)"},
			{Name: "Dance", Icon: "💃", Description: "Aerobic dance"},
			{Name: "DanceRev", Icon: "💃", Description: "Aerobic dance (reverse)"},
			{Name: "Shoot", Icon: "🎯", Description: "Side shoot"},
			{Name: "ShootRev", Icon: "🎯", Description: "Side shoot (reverse)"},
			{Name: "CoolShoot", Icon: "👉", Description: "Cool dual gun shoot"},
			{Name: "CoolShootRev", Icon: "👉", Description: "Cool gun (reverse)"},
			{Name: "BreakDoor", Icon: "🚪", Description: "Break door"},
			{Name: "BreakDoorRev", Icon: "🚪", Description: "Break door (reverse)"},
			{Name: "FastRunEnd", Icon: "🏃‍♂️", Description: "Fast run end"},
			{Name: "FastRunEndRev", Icon: "🏃‍♂️", Description: "Fast run end (rev)"},
			{Name: "FastRunLoop", Icon: "🏃", Description: "Fast run loop"},
			{Name: "FastRunLoopRev", Icon: "🏃", Description: "Fast run loop (rev)"},
			{Name: "FastRunStart", Icon: "🏃‍♀️", Description: "Fast run start"},
			{Name: "FastRunStartRev", Icon: "🏃‍♀️", Description: "Fast start (rev)"},
			{Name: "GunShoot", Icon: "🔫", Description: "Gun shooting"},
			{Name: "GunShootRev", Icon: "🔫", Description: "Gun shooting (reverse)"},
			{Name: "DrawGun", Icon: "🔫", Description: "Draw gun from back"},
			{Name: "DrawGunRev", Icon: "🔫", Description: "Draw gun (reverse)"},
			{Name: "StandToSit", Icon: "🪑", Description: "Stand to sit"},
			{Name: "StandToSitRev", Icon: "🪑", Description: "Stand to sit (reverse)"},
		},
	}
}
