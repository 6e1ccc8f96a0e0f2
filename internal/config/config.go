package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"anim-mapper/internal/diagnostic"
	"anim-mapper/internal/mapping"
)

// Environment variables consulted for flag defaults.
const (
	EnvAssets  = "ANIM_MAPPER_ASSETS"
	EnvTables  = "ANIM_MAPPER_TABLES"
	EnvFormat  = "ANIM_MAPPER_FORMAT"
	EnvPackage = "ANIM_MAPPER_PACKAGE"
)

// Commands understood by the CLI.
var Commands = []string{"list", "map", "gen", "check", "tables"}

// ErrUsage marks command-line mistakes.
var ErrUsage = errors.New("usage error")

// Config is the resolved CLI configuration.
type Config struct {
	Command string
	// Assets are the asset names given after the flags.
	Assets []string
	// AssetDir is where asset names are resolved.
	AssetDir string
	// TablesFile optionally overrides the built-in tables.
	TablesFile string
	// Format is the gen output format.
	Format string
	// Output is the gen output file; empty or "-" means stdout.
	Output string
	// OutputDir writes one file per asset instead of Output.
	OutputDir string
	// PackageName is the package of generated Go code.
	PackageName string
	Verbose     bool
	Debug       bool
}

// Load parses args (without the program name). Flag defaults come from the
// environment, after an optional .env file in the working directory.
func Load(args []string, stderr io.Writer) (*Config, error) {
	_ = godotenv.Load()

	if len(args) == 0 {
		return nil, fmt.Errorf("%w: missing command (one of %s)", ErrUsage, strings.Join(Commands, ", "))
	}

	cfg := &Config{Command: args[0]}
	if !isCommand(cfg.Command) {
		return nil, fmt.Errorf("%w: unknown command %q", ErrUsage, cfg.Command)
	}

	fs := flag.NewFlagSet(cfg.Command, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.AssetDir, "assets", envOr(EnvAssets, "models/assets"), "directory holding <asset>.gltf or <asset>.glb")
	fs.StringVar(&cfg.TablesFile, "tables", envOr(EnvTables, ""), "YAML file overriding the keyword tables")
	fs.StringVar(&cfg.Format, "format", envOr(EnvFormat, "js"), "gen output format: js, go or yaml")
	fs.StringVar(&cfg.Output, "o", "", "gen or tables output file (default stdout)")
	fs.StringVar(&cfg.OutputDir, "dir", "", "gen output directory, one file per asset")
	fs.StringVar(&cfg.PackageName, "package", envOr(EnvPackage, "animations"), "package name for go output")
	fs.BoolVar(&cfg.Verbose, "v", false, "print info diagnostics")
	fs.BoolVar(&cfg.Debug, "debug", false, "dump the resolved plan")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	cfg.Assets = fs.Args()

	// flag stops at the first asset name; anything flag-like after it
	// would otherwise be taken as an asset.
	for _, a := range cfg.Assets {
		if len(a) > 1 && strings.HasPrefix(a, "-") {
			return nil, fmt.Errorf("%w: flag %s after asset names; flags go before assets", ErrUsage, a)
		}
	}

	if cfg.Command != "tables" && len(cfg.Assets) == 0 {
		return nil, fmt.Errorf("%w: %s needs at least one asset name", ErrUsage, cfg.Command)
	}

	if cfg.Output != "" && cfg.Output != "-" && len(cfg.Assets) > 1 {
		return nil, fmt.Errorf("%w: -o takes a single asset; use -dir for several", ErrUsage)
	}

	return cfg, nil
}

// Tables returns the built-in tables, or the tables file layered over them.
// A tables file with validation errors is rejected.
func (c *Config) Tables() (*mapping.Tables, *diagnostic.Diagnostics, error) {
	if c.TablesFile == "" {
		return mapping.Default(), &diagnostic.Diagnostics{}, nil
	}

	tables, err := mapping.LoadFile(c.TablesFile)
	if err != nil {
		return nil, nil, err
	}

	res := mapping.Validate(tables)
	if res.HasErrors() {
		return nil, res, fmt.Errorf("invalid tables file %s: %w", c.TablesFile, res.Error())
	}

	return tables, res, nil
}

func isCommand(s string) bool {
	for _, c := range Commands {
		if c == s {
			return true
		}
	}

	return false
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}
