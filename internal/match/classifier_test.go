package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"anim-mapper/internal/mapping"
)

func TestClassifyDefaultTables(t *testing.T) {
	c := NewClassifier(mapping.Default())

	tests := []struct {
		key       string
		wantClass Class
		wantValue string
	}{
		{"walk01_loop_251104", Locomotion, "WalkLoop"},
		{"walk01_start_251151", Locomotion, "WalkStart"},
		{"walk01_end_251138", Locomotion, "WalkEnd"},
		{"walk-relaxed_loop_251148", Locomotion, "WalkRelaxedLoop"},
		{"idle_251087", Locomotion, "Idle"},
		{"default", Locomotion, "Default"},
		{"aerobic-dance_315220", General, "Dance"},
		{"cc02_sideshoot", General, "Shoot"},
		{"hold_gun_fastrun_forward_end_279362", General, "FastRunEnd"},
		{"stand-to-sit_251123", General, "StandToSit"},

		// "walk" marks it locomotion, and no locomotion row matches it.
		{"crouch_walk_r_againstwall", Unmatched, ""},
		{"somerandomclip", Unmatched, ""},
		{"", Unmatched, ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := c.Classify(tt.key)
			assert.Equal(t, tt.wantClass, got.Class)
			assert.Equal(t, tt.wantValue, got.Value)
		})
	}
}

func TestClassifyLocomotionIsExclusive(t *testing.T) {
	tables := mapping.Default()
	tables.General = append(mapping.KeywordTable{{Keyword: "idle", Name: "GeneralIdle"}}, tables.General...)

	got := NewClassifier(tables).Classify("idle_251087")

	assert.Equal(t, Locomotion, got.Class)
	assert.Equal(t, "Idle", got.Value)
}

func TestClassifyFirstMatchTieBreak(t *testing.T) {
	tables := mapping.Default()
	tables.General = mapping.KeywordTable{
		{Keyword: "gun", Name: "AnyGun"},
		{Keyword: "hold_gun_shooting", Name: "GunShoot"},
	}

	got := NewClassifier(tables).Classify("hold_gun_shooting_279354")

	assert.Equal(t, General, got.Class)
	assert.Equal(t, "AnyGun", got.Value)
	assert.Equal(t, "gun", got.Keyword)
}

func TestClassifyNoIndicators(t *testing.T) {
	tables := mapping.Default()
	tables.LocomotionIndicators = nil
	tables.General = mapping.KeywordTable{{Keyword: "walk", Name: "Walk"}}

	got := NewClassifier(tables).Classify("walk01_loop")

	assert.Equal(t, General, got.Class)
	assert.Equal(t, "Walk", got.Value)
}
