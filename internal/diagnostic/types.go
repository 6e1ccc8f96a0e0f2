package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"anim-mapper/internal/common"
)

// Diagnostic codes emitted by the pipeline.
const (
	CodeClassified            = "clip_classified"
	CodeUnmatched             = "clip_unmatched"
	CodeReversedWithoutPrefix = "reversed_without_prefix"
	CodeOverwritten           = "mapping_overwritten"
	CodeDanglingSuccessor     = "dangling_successor"
	CodeInvalidTable          = "invalid_table"
	CodeDuplicateKeyword      = "duplicate_keyword"
)

// Reporter is a sink for pipeline events.
type Reporter interface {
	Report(d Diagnostic)
}

// Discard is a Reporter that drops every event.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(Diagnostic) {}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Table names the keyword or successor table this relates to (if any).
	Table string
	// Clip is the raw clip name this relates to (if any).
	Clip string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Info builds an info diagnostic.
func Info(code, message, table, clip string) Diagnostic {
	return Diagnostic{Severity: DiagnosticInfo, Code: code, Message: message, Table: table, Clip: clip}
}

// Warning builds a warning diagnostic.
func Warning(code, message, table, clip string) Diagnostic {
	return Diagnostic{Severity: DiagnosticWarning, Code: code, Message: message, Table: table, Clip: clip}
}

// Error builds an error diagnostic.
func Error(code, message, table, clip string) Diagnostic {
	return Diagnostic{Severity: DiagnosticError, Code: code, Message: message, Table: table, Clip: clip}
}

// Report files d under its severity. It makes *Diagnostics a collecting Reporter.
func (d *Diagnostics) Report(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, table, clip string) {
	d.Report(Error(code, message, table, clip))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, table, clip string) {
	d.Report(Warning(code, message, table, clip))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, table, clip string) {
	d.Report(Info(code, message, table, clip))
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// ByCode returns every collected diagnostic with the given code, errors first.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Code == code {
				out = append(out, diag)
			}
		}
	}

	return out
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Table != "" {
		prefix = append(prefix, "["+d.Table+"]")
	}

	if d.Clip != "" {
		prefix = append(prefix, d.Clip)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
