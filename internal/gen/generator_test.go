package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"anim-mapper/internal/asset"
	"anim-mapper/internal/mapping"
	"anim-mapper/internal/plan"
)

func samplePlan(t *testing.T) *plan.Plan {
	t.Helper()

	clips := asset.FromNames(
		"Armature.002|walk01_start_251151",
		"Armature.001|walk01_loop_251104",
		"Armature.009|idle_251087",
		"Armature.005|aerobic-dance_315220",
		"Armature.015|stand-to-sit_251123",
		"Armature.099|jump",
	)

	return plan.NewBuilder(mapping.Default()).Build("rb4", clips)
}

func TestGenerateJS(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig(), mapping.Default())

	file, err := g.Generate(samplePlan(t))
	require.NoError(t, err)

	assert.Equal(t, "rb4_animations.js", file.Filename)

	want := `// Animation mapping for rb4
static walkAnimations = [
    { name: 'WalkStart', index: 0, next: 'WalkLoop' },
    { name: 'WalkLoop', index: 1, next: null },
    { name: 'Idle', index: 2, next: null },
];

static animations = [
    { name: 'Dance', description: 'Aerobic dance', icon: '💃', index: 3, next: 'Idle' },
    { name: 'StandToSit', description: 'Stand to sit', icon: '🪑', index: 4, next: 'StandToSitRev' },
];
`
	assert.Equal(t, want, string(file.Content))
}

func TestGenerateGo(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Format = FormatGo

	file, err := NewGenerator(cfg, mapping.Default()).Generate(samplePlan(t))
	require.NoError(t, err)

	src := string(file.Content)
	assert.Equal(t, "rb4_animations.go", file.Filename)
	assert.True(t, strings.HasPrefix(src, "// Code generated by anim-mapper from rb4. DO NOT EDIT."))
	assert.Contains(t, src, "package animations")
	assert.Contains(t, src, `{Name: "WalkStart", Index: 0, Next: "WalkLoop"},`)
	assert.Contains(t, src, `{Name: "WalkLoop", Index: 1, Next: ""},`)
	assert.Contains(t, src, `Name: "StandToSit", Description: "Stand to sit"`)
	assert.Contains(t, src, `Next: "StandToSitRev"}`)
}

func TestGenerateGoFormatFailureWritesDebugFile(t *testing.T) {
	dir := t.TempDir()
	cfg := GeneratorConfig{Format: FormatGo, PackageName: "not-a-package", DebugDir: dir}

	_, err := NewGenerator(cfg, mapping.Default()).Generate(samplePlan(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formatting code")

	_, statErr := os.Stat(filepath.Join(dir, "rb4_animations.unformatted.go"))
	assert.NoError(t, statErr)
}

func TestGenerateYAML(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Format = FormatYAML

	file, err := NewGenerator(cfg, mapping.Default()).Generate(samplePlan(t))
	require.NoError(t, err)

	var doc yamlDocument
	require.NoError(t, yaml.Unmarshal(file.Content, &doc))

	assert.Equal(t, "rb4", doc.Asset)
	require.Len(t, doc.WalkAnimations, 3)
	require.NotNil(t, doc.WalkAnimations[0].Next)
	assert.Equal(t, "WalkLoop", *doc.WalkAnimations[0].Next)
	assert.Nil(t, doc.WalkAnimations[1].Next)

	require.Len(t, doc.Animations, 2)
	assert.Equal(t, "Aerobic dance", doc.Animations[0].Description)
}

func TestGenerateEmptyPlan(t *testing.T) {
	p := plan.NewBuilder(mapping.Default()).Build("empty", asset.FromNames("SomeRandomClip"))

	_, err := NewGenerator(DefaultGeneratorConfig(), mapping.Default()).Generate(p)
	assert.ErrorIs(t, err, ErrNoAnimations)
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"js", "GO", " yaml "} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}

	_, err := ParseFormat("ts")
	assert.Error(t, err)

	assert.Equal(t, ".js", FormatJS.Ext())
	assert.Equal(t, ".go", FormatGo.Ext())
	assert.Equal(t, ".yaml", FormatYAML.Ext())
}

func TestJSHelpers(t *testing.T) {
	assert.Equal(t, `'it\'s'`, jsString("it's"))
	assert.Equal(t, `'a\\b'`, jsString(`a\b`))
	assert.Equal(t, "null", jsNext(""))
	assert.Equal(t, "'Idle'", jsNext("Idle"))
}

func TestFileStem(t *testing.T) {
	assert.Equal(t, "rb4", fileStem("rb4"))
	assert.Equal(t, "chars_rb4_glb", fileStem("chars/rb4.glb"))
	assert.Equal(t, "asset", fileStem(""))
}
