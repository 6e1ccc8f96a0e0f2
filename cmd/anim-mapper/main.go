// Package main provides the CLI entrypoint for anim-mapper.
//
// anim-mapper reads the animation clips of a glTF model and:
//   - Sorts them into walk-cycle and general action clips by keyword
//   - Builds name -> clip index tables, renaming reversed clips
//   - Generates the transition tables an animation player consumes
//   - Checks the successor graph for names the model does not provide
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"anim-mapper/internal/asset"
	"anim-mapper/internal/config"
	"anim-mapper/internal/diagnostic"
	"anim-mapper/internal/gen"
	"anim-mapper/internal/mapping"
	"anim-mapper/internal/plan"
)

const usage = `usage: anim-mapper <command> [flags] <asset>...

Flags must come before the asset names.

Commands:
  list    print every clip of the asset
  map     print the locomotion and general mappings
  gen     render the transition tables (-format js|go|yaml, -o file, -dir dir)
  check   report unmatched clips and successors missing from the asset
  tables  print the effective keyword tables as YAML (-o file)
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app carries what every command needs.
type app struct {
	cfg    *config.Config
	tables *mapping.Tables
	source asset.Source
	out    io.Writer
	log    *log.Logger
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "anim-mapper: ", 0)

	cfg, err := config.Load(args, stderr)
	if err != nil {
		logger.Print(err)
		fmt.Fprint(stderr, usage)

		return 2
	}

	tables, tableDiags, err := cfg.Tables()
	if tableDiags != nil {
		printDiagnostics(logger, tableDiags, cfg.Verbose)
	}

	if err != nil {
		logger.Print(err)
		return 1
	}

	source, err := asset.NewCachedSource(asset.NewFileSource(cfg.AssetDir), asset.DefaultCacheSize)
	if err != nil {
		logger.Print(err)
		return 1
	}

	a := &app{cfg: cfg, tables: tables, source: source, out: stdout, log: logger}

	switch cfg.Command {
	case "tables":
		err = a.printTables()
	case "list":
		err = a.forEachAsset(a.list)
	case "map":
		err = a.forEachAsset(a.printMap)
	case "gen":
		err = a.generate()
	case "check":
		err = a.forEachAsset(a.check)
	}

	if err != nil {
		logger.Print(err)
		return 1
	}

	return 0
}

func (a *app) forEachAsset(fn func(name string) error) error {
	for _, name := range a.cfg.Assets {
		if err := fn(name); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) printTables() error {
	if a.cfg.Output != "" && a.cfg.Output != "-" {
		return mapping.WriteFile(a.tables, a.cfg.Output)
	}

	data, err := mapping.Marshal(a.tables)
	if err != nil {
		return fmt.Errorf("marshaling tables: %w", err)
	}

	_, err = a.out.Write(data)

	return err
}

func (a *app) list(name string) error {
	clips, err := a.source.Clips(name)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Found %d animations in %s:\n", len(clips), name)

	for _, c := range clips {
		fmt.Fprintf(a.out, "  %s\n", c)
	}

	return nil
}

// build loads and classifies one asset. Diagnostics are printed as they
// happen; info events only with -v.
func (a *app) build(name string) (*plan.Plan, error) {
	reporter := diagnostic.ReporterFunc(func(d diagnostic.Diagnostic) {
		if d.Severity == diagnostic.DiagnosticInfo && !a.cfg.Verbose {
			return
		}

		a.log.Printf("%s: %s: %s", name, d.Severity, d)
	})

	p, err := plan.NewBuilder(a.tables, plan.WithReporter(reporter)).Load(a.source, name)
	if err != nil {
		return nil, err
	}

	if a.cfg.Debug {
		spew.Fdump(a.log.Writer(), p)
	}

	return p, nil
}

func (a *app) printMap(name string) error {
	p, err := a.build(name)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s walk animations:\n", name)

	for n, idx := range p.Locomotion.All {
		fmt.Fprintf(a.out, "  %s: %d\n", n, idx)
	}

	fmt.Fprintf(a.out, "%s general animations:\n", name)

	for n, idx := range p.General.All {
		fmt.Fprintf(a.out, "  %s: %d\n", n, idx)
	}

	return nil
}

func (a *app) generate() error {
	format, err := gen.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}

	g := gen.NewGenerator(gen.GeneratorConfig{
		Format:      format,
		PackageName: a.cfg.PackageName,
		DebugDir:    a.cfg.OutputDir,
	}, a.tables)

	var files []gen.GeneratedFile

	for _, name := range a.cfg.Assets {
		p, err := a.build(name)
		if err != nil {
			return err
		}

		file, err := g.Generate(p)
		if errors.Is(err, gen.ErrNoAnimations) {
			a.log.Printf("%s: No animations found.", name)
			continue
		}

		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		if a.cfg.OutputDir != "" {
			files = append(files, *file)
			continue
		}

		if err := gen.WriteFile(file, a.cfg.Output, a.out); err != nil {
			return err
		}
	}

	if a.cfg.OutputDir != "" && len(files) > 0 {
		return gen.WriteFiles(files, a.cfg.OutputDir)
	}

	return nil
}

func (a *app) check(name string) error {
	p, err := a.build(name)
	if err != nil {
		return err
	}

	// Build events were already printed by the reporter.
	res := plan.Check(p, a.tables)
	printDiagnostics(a.log, res, a.cfg.Verbose)

	fmt.Fprintf(a.out, "%s: %d clips, %d walk, %d general, %d unmatched, %d dangling\n",
		name, len(p.Clips), p.Locomotion.Len(), p.General.Len(),
		len(p.Diagnostics.ByCode(diagnostic.CodeUnmatched)),
		len(res.ByCode(diagnostic.CodeDanglingSuccessor)))

	return res.Error()
}

func printDiagnostics(logger *log.Logger, d *diagnostic.Diagnostics, verbose bool) {
	for _, e := range d.Errors {
		logger.Printf("error: %s", e)
	}

	for _, w := range d.Warnings {
		logger.Printf("warning: %s", w)
	}

	if !verbose {
		return
	}

	for _, i := range d.Infos {
		logger.Printf("info: %s", i)
	}
}
