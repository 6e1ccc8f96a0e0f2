package gen

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
	"gopkg.in/yaml.v3"

	"anim-mapper/internal/mapping"
	"anim-mapper/internal/plan"
)

// ErrNoAnimations is returned when a plan has nothing to render.
var ErrNoAnimations = errors.New("no animations found")

// Format selects the output syntax.
type Format string

const (
	FormatJS   Format = "js"
	FormatGo   Format = "go"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatJS, FormatGo, FormatYAML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown format %q (want js, go or yaml)", s)
}

// Ext returns the file extension for the format.
func (f Format) Ext() string {
	switch f {
	case FormatGo:
		return ".go"
	case FormatYAML:
		return ".yaml"
	default:
		return ".js"
	}
}

// GeneratorConfig holds configuration for rendering.
type GeneratorConfig struct {
	// Format is the output syntax.
	Format Format
	// PackageName is the package of generated Go files.
	PackageName string
	// DebugDir receives unformatted Go output when formatting fails.
	DebugDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Format:      FormatJS,
		PackageName: "animations",
	}
}

// Generator renders plans.
type Generator struct {
	config GeneratorConfig
	tables *mapping.Tables
}

// NewGenerator creates a Generator that resolves successors from tables.
func NewGenerator(config GeneratorConfig, tables *mapping.Tables) *Generator {
	if config.Format == "" {
		config.Format = FormatJS
	}

	if config.PackageName == "" {
		config.PackageName = "animations"
	}

	return &Generator{config: config, tables: tables}
}

// GeneratedFile is one rendered output.
type GeneratedFile struct {
	// Filename is the suggested name, e.g. "rb4_animations.js".
	Filename string
	// Content is the rendered text.
	Content []byte
}

// templateData holds everything the templates need.
type templateData struct {
	Asset       string
	PackageName string
	Walk        []plan.Transition
	General     []plan.Transition
}

// Generate renders p. It returns ErrNoAnimations when neither mapping has entries.
func (g *Generator) Generate(p *plan.Plan) (*GeneratedFile, error) {
	if p.IsEmpty() {
		return nil, ErrNoAnimations
	}

	walk, general := plan.Transitions(p, g.tables)
	data := templateData{
		Asset:       p.Asset,
		PackageName: g.config.PackageName,
		Walk:        walk,
		General:     general,
	}

	filename := fileStem(p.Asset) + "_animations" + g.config.Format.Ext()

	var (
		content []byte
		err     error
	)

	switch g.config.Format {
	case FormatGo:
		content, err = g.renderGo(filename, data)
	case FormatYAML:
		content, err = renderYAML(data)
	default:
		content, err = execute(jsTemplate, data)
	}

	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", g.config.Format, err)
	}

	return &GeneratedFile{Filename: filename, Content: content}, nil
}

func (g *Generator) renderGo(filename string, data templateData) ([]byte, error) {
	src, err := execute(goTemplate, data)
	if err != nil {
		return nil, err
	}

	formatted, err := imports.Process(filename, src, nil)
	if err != nil {
		if g.config.DebugDir != "" {
			_ = writeDebugUnformatted(g.config.DebugDir, filename, src)
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return formatted, nil
}

func execute(tmpl *template.Template, data templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// yamlTransition renders terminal successors as null.
type yamlTransition struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Icon        string  `yaml:"icon,omitempty"`
	Index       int     `yaml:"index"`
	Next        *string `yaml:"next"`
}

type yamlDocument struct {
	Asset          string           `yaml:"asset"`
	WalkAnimations []yamlTransition `yaml:"walkAnimations"`
	Animations     []yamlTransition `yaml:"animations"`
}

func renderYAML(data templateData) ([]byte, error) {
	doc := yamlDocument{
		Asset:          data.Asset,
		WalkAnimations: toYAML(data.Walk),
		Animations:     toYAML(data.General),
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling yaml: %w", err)
	}

	return out, nil
}

func toYAML(ts []plan.Transition) []yamlTransition {
	out := make([]yamlTransition, 0, len(ts))

	for _, t := range ts {
		y := yamlTransition{
			Name:        t.Name,
			Description: t.Description,
			Icon:        t.Icon,
			Index:       t.Index,
		}

		if !t.IsTerminal() {
			next := t.Next
			y.Next = &next
		}

		out = append(out, y)
	}

	return out
}

// fileStem turns an asset name into a safe filename stem.
func fileStem(assetName string) string {
	stem := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, assetName)

	if stem == "" {
		return "asset"
	}

	return stem
}
