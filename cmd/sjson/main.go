// Command sjson loads an sjson document and prints, queries, checks or
// rewrites it.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/KimNorgaard/go-sjson"
)

const version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	File    string           `help:"Path to the document to load." short:"f" type:"path"`
	Get     string           `help:"Print the value at a dot separated path such as a.1.b." short:"g"`
	Check   bool             `help:"Report whether the loaded file is in canonical layout and show a diff if not." short:"c"`
	Print   bool             `help:"Print the document to stdout." short:"p"`
	Output  string           `help:"Write the document to this path." short:"o" type:"path"`
	Color   string           `help:"Colorize printed output." placeholder:"auto|always|never"`
	Verbose bool             `help:"Enable debug logging." short:"v"`
	Config  string           `help:"Path to a YAML config file." type:"path"`
	Version kong.VersionFlag `help:"Show version information."`
}

func newParser(cli *CLI, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name("sjson"),
		kong.Description("Load, inspect and rewrite sjson documents."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	}, opts...)
	return kong.New(cli, opts...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	_, err = parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	os.Exit(run(&cli, os.Stdout, os.Stderr))
}

// run executes the requested steps in the order load, get, check, print,
// output. A failed step is logged and the remaining steps still run. The
// returned exit status is 1 if anything failed.
func run(cli *CLI, stdout, stderr io.Writer) int {
	cfg, err := resolveConfig(cli)
	if err != nil {
		fmt.Fprintf(stderr, "sjson: %v\n", err)
		return 1
	}

	log := newLogger(stderr, cfg.level())
	a := &app{
		cfg:      cfg,
		log:      log,
		stdout:   stdout,
		doc:      sjson.New().WithLogger(log),
		colorize: useColor(cfg.Color, stdout),
	}
	if a.colorize {
		color.NoColor = false
	}

	steps := []struct {
		name    string
		enabled bool
		fn      func() error
	}{
		{"load", cli.File != "", func() error { return a.load(cli.File) }},
		{"get", cli.Get != "", func() error { return a.get(cli.Get) }},
		{"check", cli.Check, func() error { return a.check(cli.File) }},
		{"print", cli.Print, a.print},
		{"output", cli.Output != "", func() error { return a.save(cli.Output) }},
	}

	status := 0
	for _, step := range steps {
		if !step.enabled {
			continue
		}
		log.Debug("running step", "step", step.name)
		if err := step.fn(); err != nil {
			log.Error(step.name+" failed", "error", err)
			status = 1
		}
	}
	return status
}

// resolveConfig layers the command-line flags over the config file.
func resolveConfig(cli *CLI) (*Config, error) {
	cfg := NewConfig()
	if cli.Config != "" {
		var err error
		if cfg, err = LoadConfig(cli.Config); err != nil {
			return nil, err
		}
	}
	if cli.Color != "" {
		cfg.Color = cli.Color
	}
	if cli.Verbose {
		cfg.LogLevel = slog.LevelDebug.String()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
