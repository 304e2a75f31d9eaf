// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command rpncalc evaluates arithmetic formulas.
//
//	rpncalc [flags] [formula...]
//
// Each formula argument, or each line of standard input when there are no
// arguments, is evaluated and its value printed. Formulas without a value
// print "?" and make the command exit with status 1.
//
// With --format=yaml the results are written as a YAML sequence of
// formula, postfix, value and error instead.
//
// The --generate and --check flags produce random formulas instead. The
// generator is configured by flags, RPNCALC_ environment variables or an
// rpncalc.toml file.
package main

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ianlewis/rpncalc"
	"github.com/ianlewis/rpncalc/generator"
	"github.com/ianlewis/rpncalc/internal/config"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

// options are the command's own flags.
type options struct {
	echo     bool
	explain  bool
	generate int
	check    int
	format   string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("rpncalc", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.BoolVar(&opts.echo, "echo", false, "print the postfix form of each formula")
	fs.BoolVar(&opts.explain, "explain", false, "print why a formula has no value")
	fs.IntVar(&opts.generate, "generate", 0, "print `N` random formulas")
	fs.IntVar(&opts.check, "check", 0, "check that `N` random formulas are accepted")
	fs.StringVar(&opts.format, "format", "text", "output format (text, yaml)")
	config.AddFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	v := viper.New()
	config.SetDefaults(v)
	if err := config.BindFlags(v, fs); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	configPath, _ := fs.GetString(config.FlagConfig)
	cfg, err := config.Load(v, configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	// Load has validated the level.
	level, _ := cfg.Log.ZerologLevel()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		With().Timestamp().Logger().
		Level(level)

	if opts.generate > 0 || opts.check > 0 {
		g, err := generator.New(cfg.Generator.Options()...)
		if err != nil {
			logger.Error().Err(err).Msg("creating generator")
			return exitUsage
		}
		for range opts.generate {
			fmt.Fprintln(stdout, g.Generate())
		}
		if opts.check > 0 {
			return check(g, opts.check, stdout, logger)
		}
		return exitOK
	}

	p, err := newPrinter(opts.format, opts, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if fs.NArg() > 0 {
		return evalAll(fs.Args(), p, logger)
	}
	return evalLines(stdin, p, logger)
}

// check generates n formulas and reports any the engine rejects.
func check(g *generator.Generator, n int, stdout io.Writer, logger zerolog.Logger) int {
	failed := 0
	for range n {
		f := g.Generate()
		if err := accept(f); err != nil {
			failed++
			logger.Error().Err(err).Str("formula", f).Msg("formula rejected")
		}
	}

	fmt.Fprintf(stdout, "checked %d formulas, %d rejected\n", n, failed)
	if failed > 0 {
		return exitInvalid
	}
	return exitOK
}

// accept runs the formula through every pipeline stage.
func accept(text string) error {
	tokens, err := rpncalc.Tokenize(text)
	if err != nil {
		return err
	}
	out, err := rpncalc.Convert(tokens)
	if err != nil {
		return err
	}
	_, err = rpncalc.Evaluate(out)
	return err
}

func evalAll(formulas []string, p printer, logger zerolog.Logger) int {
	e := rpncalc.New(rpncalc.WithLogger(logger))

	code := exitOK
	for _, f := range formulas {
		r := evalOne(e, f)
		if r.Value == nil {
			code = exitInvalid
		}
		p.print(r)
	}
	return flush(p, code, logger)
}

func evalLines(stdin io.Reader, p printer, logger zerolog.Logger) int {
	e := rpncalc.New(rpncalc.WithLogger(logger))

	code := exitOK
	s := bufio.NewScanner(stdin)
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		r := evalOne(e, line)
		if r.Value == nil {
			code = exitInvalid
		}
		p.print(r)
	}
	if err := s.Err(); err != nil {
		logger.Error().Err(err).Msg("reading input")
		return exitUsage
	}
	return flush(p, code, logger)
}

func flush(p printer, code int, logger zerolog.Logger) int {
	if err := p.flush(); err != nil {
		logger.Error().Err(err).Msg("writing output")
		return exitUsage
	}
	return code
}

// result is the outcome of evaluating one formula.
type result struct {
	Formula string `yaml:"formula"`

	// Postfix is empty if the formula could not be converted.
	Postfix string `yaml:"postfix,omitempty"`

	// Value is nil if the formula has no value.
	Value *float64 `yaml:"value"`

	Error string `yaml:"error,omitempty"`
}

func evalOne(e *rpncalc.Engine, text string) result {
	e.Change(text)

	r := result{
		Formula: text,
		Postfix: postfix(text),
	}
	if v, ok := e.Value(); ok {
		r.Value = &v
	} else {
		r.Error = e.Err().Error()
	}
	return r
}

// postfix returns the postfix form of text, or "" if it has none.
func postfix(text string) string {
	tokens, err := rpncalc.Tokenize(text)
	if err != nil {
		return ""
	}
	out, err := rpncalc.Convert(tokens)
	if err != nil {
		return ""
	}
	return rpncalc.FormatPostfix(out)
}

// printer writes results in an output format.
type printer interface {
	print(r result)
	flush() error
}

func newPrinter(format string, opts options, w io.Writer) (printer, error) {
	switch format {
	case "text":
		return &textPrinter{w: w, echo: opts.echo, explain: opts.explain}, nil
	case "yaml":
		return &yamlPrinter{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// textPrinter writes one tab separated line per result: the postfix form
// when echoing, the value or "?" and the error when explaining.
type textPrinter struct {
	w       io.Writer
	echo    bool
	explain bool
	err     error
}

func (p *textPrinter) print(r result) {
	var fields []string
	if p.echo {
		fields = append(fields, cmp.Or(r.Postfix, "?"))
	}
	if r.Value != nil {
		fields = append(fields, fmt.Sprintf("%g", *r.Value))
	} else {
		fields = append(fields, "?")
		if p.explain {
			fields = append(fields, r.Error)
		}
	}

	if _, err := fmt.Fprintln(p.w, strings.Join(fields, "\t")); err != nil && p.err == nil {
		p.err = err
	}
}

func (p *textPrinter) flush() error {
	return p.err
}

// yamlPrinter writes all results as a single YAML sequence.
type yamlPrinter struct {
	w       io.Writer
	results []result
}

func (p *yamlPrinter) print(r result) {
	p.results = append(p.results, r)
}

func (p *yamlPrinter) flush() error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(p.results); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return enc.Close()
}
