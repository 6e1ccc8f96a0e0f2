package plan

import (
	"fmt"
	"strings"

	"anim-mapper/internal/asset"
	"anim-mapper/internal/diagnostic"
	"anim-mapper/internal/mapping"
	"anim-mapper/internal/match"
)

// Builder classifies clips and accumulates them into mappings.
type Builder struct {
	tables     *mapping.Tables
	classifier *match.Classifier
	reporter   diagnostic.Reporter
}

// Option configures a Builder.
type Option func(*Builder)

// WithReporter forwards every event to r in addition to Plan.Diagnostics.
func WithReporter(r diagnostic.Reporter) Option {
	return func(b *Builder) {
		if r != nil {
			b.reporter = r
		}
	}
}

// NewBuilder creates a Builder for the given tables.
func NewBuilder(tables *mapping.Tables, opts ...Option) *Builder {
	b := &Builder{
		tables:     tables,
		classifier: match.NewClassifier(tables),
		reporter:   diagnostic.Discard,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Load fetches the clips of name from src and builds the plan. A source
// failure aborts the run and is returned unchanged.
func (b *Builder) Load(src asset.Source, name string) (*Plan, error) {
	clips, err := src.Clips(name)
	if err != nil {
		return nil, err
	}

	return b.Build(name, clips), nil
}

// Build classifies clips in order. Clips matching no table, and reversed
// locomotion clips outside the Walk family, are dropped and reported.
func (b *Builder) Build(assetName string, clips []asset.Clip) *Plan {
	p := &Plan{
		Asset:      assetName,
		Clips:      append([]asset.Clip(nil), clips...),
		Locomotion: NewMapping(),
		General:    NewMapping(),
	}

	report := func(d diagnostic.Diagnostic) {
		p.Diagnostics.Report(d)
		b.reporter.Report(d)
	}

	for _, clip := range clips {
		key, reversed := match.Normalize(clip.Name)
		res := b.classifier.Classify(key)

		if res.Class == match.Unmatched {
			report(diagnostic.Info(diagnostic.CodeUnmatched,
				fmt.Sprintf("%q matches no keyword", key), "", clip.Name))

			continue
		}

		name, ok := OutputName(res.Value, reversed, res.Class)
		if !ok {
			report(diagnostic.Warning(diagnostic.CodeReversedWithoutPrefix,
				fmt.Sprintf("reversed %s has no %s prefix; dropped", res.Value, FamilyPrefix),
				mapping.TableLocomotion, clip.Name))

			continue
		}

		entry := Entry{
			Name:     name,
			Index:    clip.Index,
			Reversed: reversed,
			Class:    res.Class,
			Clip:     clip.Name,
			Keyword:  res.Keyword,
		}
		p.Entries = append(p.Entries, entry)

		m := p.Mapping(res.Class)
		if prev, ok := m.Get(name); ok {
			report(diagnostic.Warning(diagnostic.CodeOverwritten,
				fmt.Sprintf("%s: index %d replaced by %d", name, prev, clip.Index),
				tableName(res.Class), clip.Name))
		}

		m.Set(name, clip.Index)

		report(diagnostic.Info(diagnostic.CodeClassified,
			fmt.Sprintf("%s -> %s (%s)", key, name, res.Class), tableName(res.Class), clip.Name))
	}

	return p
}

// OutputName derives the mapping key for a matched table value.
//
// Reversed locomotion values swap the Walk prefix for WalkRev and are
// rejected when the value lacks it (e.g. a reversed Idle). Reversed
// general values get the Rev suffix.
func OutputName(value string, reversed bool, class match.Class) (string, bool) {
	if !reversed {
		return value, true
	}

	switch class {
	case match.Locomotion:
		if !strings.HasPrefix(value, FamilyPrefix) {
			return "", false
		}

		return strings.Replace(value, FamilyPrefix, ReversedFamilyPrefix, 1), true
	case match.General:
		return value + ReverseSuffix, true
	default:
		return "", false
	}
}

func tableName(class match.Class) string {
	if class == match.Locomotion {
		return mapping.TableLocomotion
	}

	return mapping.TableGeneral
}
