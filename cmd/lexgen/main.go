// Command lexgen reads a lexer specification file and compiles it into a
// scanner artifact (spec.md §6's "gen" step).
package main

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/lexgen/lexgen/lexer"
	"github.com/lexgen/lexgen/specfile"
)

type options struct {
	specPath string
	outPath  string
	verbose  bool
	silent   bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Compiles a lexer specification into a scanner artifact.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.specPath, "spec", "s", "", "lexer specification file (required)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.outPath, "out", "o", "lexer.gob", "path to write the compiled scanner artifact"),
		flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}
	return opts
}

func main() {
	opts := parseFlags()

	if opts.silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if opts.specPath == "" {
		gologger.Fatal().Msgf("-spec is required")
	}

	f, err := os.Open(opts.specPath)
	if err != nil {
		gologger.Fatal().Msgf("cannot open spec file %q: %s", opts.specPath, err)
	}
	defer f.Close()

	table, err := specfile.Read(f)
	if err != nil {
		gologger.Fatal().Msgf("%s: %s", opts.specPath, err)
	}
	gologger.Info().Msgf("parsed %d rules from %s", len(table), opts.specPath)

	lx, err := lexer.Build(table)
	if err != nil {
		gologger.Fatal().Msgf("failed to build lexer: %s", err)
	}
	gologger.Info().Msgf("compiled %d DFA states", len(lx.DFA.States))

	if err := lx.Save(opts.outPath); err != nil {
		gologger.Fatal().Msgf("failed to write artifact: %s", err)
	}
	gologger.Info().Msgf("wrote scanner artifact to %s", opts.outPath)
}
