// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"dietinterp/internal/config"
	"dietinterp/internal/writers"
)

// Defaults for the single command.
const (
	DefaultMedium1 = "data/diets/western_diet_gut.qza"
	DefaultMedium2 = "data/diets/vmh_high_fiber_agora.qza"
	DefaultFactor  = 0.5
	DefaultOutput  = "interpolated_medium.csv"
)

// Options holds all CLI flags.
type Options struct {
	// Input
	Medium1 string
	Medium2 string

	// Blend
	N float64

	// Output
	Output    string // path, or "-" for stdout
	Format    string // csv|tsv|json|xlsx; "" = infer from Output
	Precision int    // -1 = shortest round-trip

	// Misc
	ConfigFile string
	Quiet      bool
	Debug      bool
	Version    bool
}

// Parse is the top-level call for CLI parsing.
func Parse(argv []string) (Options, error) { return ParseArgs(NewFlagSet("diet-interp"), argv) }

// ParseArgs registers and parses all flags, applies the optional config
// file underneath explicit flags, and validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.Medium1, "m1", DefaultMedium1, "first medium (.qza, .csv, .tsv, .xlsx)")
	fs.StringVar(&opt.Medium2, "m2", DefaultMedium2, "second medium (.qza, .csv, .tsv, .xlsx)")
	fs.StringVar(&opt.Medium1, "medium1", DefaultMedium1, "alias of -m1")
	fs.StringVar(&opt.Medium2, "medium2", DefaultMedium2, "alias of -m2")

	// Blend
	fs.Float64Var(&opt.N, "n", DefaultFactor, "interpolation factor between 0 and 1")

	// Output
	fs.StringVar(&opt.Output, "o", DefaultOutput, "output file ('-' for stdout)")
	fs.StringVar(&opt.Output, "output", DefaultOutput, "alias of -o")
	fs.StringVar(&opt.Format, "format", "", "output format: "+strings.Join(writers.Formats(), " | ")+" (default from -o extension)")
	fs.IntVar(&opt.Precision, "precision", -1, "digits after the decimal point (-1 = shortest exact)")

	// Misc
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML defaults file (flags win)")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log warnings and errors")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Debug, "debug", false, "verbose logging")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help message")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if opt.ConfigFile != "" {
		f, err := config.Load(opt.ConfigFile)
		if err != nil {
			return opt, fmt.Errorf("--config: %w", err)
		}
		applyConfig(&opt, f, setFlags(fs))
	}
	if opt.Format == "" {
		opt.Format = writers.FormatForPath(opt.Output)
	}
	return opt, Validate(opt)
}

// setFlags returns the names of flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { m[f.Name] = true })
	return m
}

// applyConfig copies file values into opt for settings no flag overrode.
func applyConfig(opt *Options, f config.File, set map[string]bool) {
	if f.Medium1 != nil && !set["m1"] && !set["medium1"] {
		opt.Medium1 = *f.Medium1
	}
	if f.Medium2 != nil && !set["m2"] && !set["medium2"] {
		opt.Medium2 = *f.Medium2
	}
	if f.N != nil && !set["n"] {
		opt.N = *f.N
	}
	if f.Output != nil && !set["o"] && !set["output"] {
		opt.Output = *f.Output
	}
	if f.Format != nil && !set["format"] {
		opt.Format = *f.Format
	}
	if f.Precision != nil && !set["precision"] {
		opt.Precision = *f.Precision
	}
}

// Validate applies CLI invariants. The blend factor range is checked by the
// interpolator so that it surfaces as an invalid-argument error.
func Validate(o Options) error {
	switch {
	case strings.TrimSpace(o.Medium1) == "":
		return errors.New("-m1 must not be empty")
	case strings.TrimSpace(o.Medium2) == "":
		return errors.New("-m2 must not be empty")
	case strings.TrimSpace(o.Output) == "":
		return errors.New("-o must not be empty")
	}
	if !writers.Known(o.Format) {
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	if o.Precision < -1 {
		return errors.New("--precision must be ≥ -1")
	}
	if o.Quiet && o.Debug {
		return errors.New("--quiet conflicts with --debug")
	}
	return nil
}
