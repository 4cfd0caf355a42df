// Command lexscan runs a previously compiled scanner artifact over an
// input file and prints the resulting token stream (spec.md §6's "scan"
// step). Given -spec instead of -artifact, it builds the lexer directly
// from a specification file, skipping the artifact step entirely.
package main

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/lexgen/lexgen/lexer"
	"github.com/lexgen/lexgen/specfile"
)

type options struct {
	artifactPath string
	specPath     string
	inputPath    string
	verbose      bool
	silent       bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Scans an input file with a previously compiled lexer artifact.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.artifactPath, "artifact", "a", "lexer.gob", "compiled scanner artifact, from lexgen"),
		flagSet.StringVarP(&opts.specPath, "spec", "s", "", "build directly from a specification file instead of an artifact"),
		flagSet.StringVarP(&opts.inputPath, "input", "i", "", "input file to scan (required)"),
	)

	flagSet.CreateGroup("output", "Output",
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

	if opts.inputPath == "" {
		gologger.Fatal().Msgf("-input is required")
	}

	lx := loadLexer(opts)

	input, err := os.ReadFile(opts.inputPath)
	if err != nil {
		gologger.Fatal().Msgf("cannot read input %q: %s", opts.inputPath, err)
	}

	res := lx.Scan(string(input))

	for _, diagnostic := range res.Diagnostics {
		gologger.Error().Msgf("%d:%d: %s", diagnostic.Line, diagnostic.Column, diagnostic.Message)
	}

	for _, tok := range res.Tokens {
		fmt.Println(tok.String())
	}
}

func loadLexer(opts *options) *lexer.Lexer {
	if opts.specPath != "" {
		f, err := os.Open(opts.specPath)
		if err != nil {
			gologger.Fatal().Msgf("cannot open spec file %q: %s", opts.specPath, err)
		}
		defer f.Close()

		table, err := specfile.Read(f)
		if err != nil {
			gologger.Fatal().Msgf("%s: %s", opts.specPath, err)
		}
		lx, err := lexer.Build(table)
		if err != nil {
			gologger.Fatal().Msgf("failed to build lexer: %s", err)
		}
		return lx
	}

	lx, err := lexer.Load(opts.artifactPath)
	if err != nil {
		gologger.Fatal().Msgf("cannot load artifact %q: %s", opts.artifactPath, err)
	}
	return lx
}
