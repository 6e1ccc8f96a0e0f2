package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsReport(t *testing.T) {
	var d Diagnostics

	d.Report(Info(CodeClassified, "walk", "", "idle_251087"))
	d.Report(Warning(CodeReversedWithoutPrefix, "dropped", "locomotion", "Idle.reverse"))
	d.AddError(CodeInvalidTable, "empty keyword", "general", "")

	assert.Len(t, d.Infos, 1)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Errors, 1)
	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "[general]: [invalid_table] empty keyword", err.Error())
}

func TestDiagnosticsByCode(t *testing.T) {
	var d Diagnostics

	d.AddInfo(CodeUnmatched, "a", "", "A")
	d.AddInfo(CodeClassified, "b", "", "B")
	d.AddWarning(CodeUnmatched, "c", "", "C")

	got := d.ByCode(CodeUnmatched)
	require.Len(t, got, 2)
	assert.Equal(t, "C", got[0].Clip)
	assert.Equal(t, "A", got[1].Clip)
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddInfo(CodeClassified, "x", "", "")
	b.AddWarning(CodeOverwritten, "y", "", "")
	a.Merge(b)

	assert.Len(t, a.Infos, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Nil(t, a.Error())
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{"message only", Diagnostic{Message: "plain"}, "plain"},
		{"with code", Diagnostic{Code: "c", Message: "m"}, "[c] m"},
		{"with clip", Diagnostic{Code: "c", Message: "m", Clip: "Armature|idle"}, "Armature|idle: [c] m"},
		{"with table and clip", Diagnostic{Message: "m", Table: "general", Clip: "x"}, "[general] x: m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}

func TestReporters(t *testing.T) {
	var seen []string

	r := ReporterFunc(func(d Diagnostic) { seen = append(seen, d.Code) })
	r.Report(Info(CodeClassified, "", "", ""))
	Discard.Report(Info(CodeUnmatched, "", "", ""))

	assert.Equal(t, []string{CodeClassified}, seen)
}
