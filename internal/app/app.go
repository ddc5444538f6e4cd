// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"gonum.org/v1/gonum/floats"

	"dietinterp/internal/cli"
	"dietinterp/internal/domain"
	"dietinterp/internal/interp"
	"dietinterp/internal/loader"
	"dietinterp/internal/logging"
	"dietinterp/internal/medium"
	"dietinterp/internal/version"
	"dietinterp/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2 // bad flags or an invalid argument
	ExitFailure     = 3 // load or write failure
	ExitInterrupted = 130
)

// RunContext parses argv, blends the two media and writes the result.
// Nothing is written unless both media load and the blend succeeds.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("diet-interp")

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(stdout, fs, "diet-interp")
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		_, _ = fmt.Fprintln(stderr, "run with -h for usage")
		return ExitUsage
	}
	if opts.Version {
		_, _ = fmt.Fprintln(stdout, version.String())
		return ExitOK
	}

	log := logging.New(logging.Config{Out: stderr, Debug: opts.Debug, Quiet: opts.Quiet})
	if err := Blend(ctx, log, opts, stdout); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return exitCode(err)
	}
	return ExitOK
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// Blend performs one load → interpolate → write pass for opts. stdout
// receives the table when opts.Output is "-".
func Blend(ctx context.Context, log *slog.Logger, opts cli.Options, stdout io.Writer) error {
	if err := interp.ValidateFactor(opts.N); err != nil {
		return err
	}

	ld := loader.New(log)
	m1, err := ld.Load(opts.Medium1)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m2, err := ld.Load(opts.Medium2)
	if err != nil {
		return err
	}

	res, err := interp.Interpolate(m1, m2, opts.N)
	if err != nil {
		return err
	}
	logSummary(log, opts, m1, m2, res)

	if err := ctx.Err(); err != nil {
		return err
	}
	wo := writers.Options{Precision: opts.Precision}
	if opts.Output == writers.Stdout {
		return writers.WriteStream(stdout, opts.Format, res, wo)
	}
	if err := writers.WriteFile(opts.Output, opts.Format, res, wo); err != nil {
		return err
	}
	log.Info("interpolated medium written", "path", opts.Output, "format", opts.Format, "reactions", res.Len())
	return nil
}

func logSummary(log *slog.Logger, opts cli.Options, m1, m2, res medium.Medium) {
	log.Info("media blended",
		"n", opts.N,
		"medium1", opts.Medium1, "reactions1", m1.Len(),
		"medium2", opts.Medium2, "reactions2", m2.Len(),
		"union", res.Len(),
	)
	log.Debug("total flux",
		"medium1", floats.Sum(m1.Fluxes()),
		"medium2", floats.Sum(m2.Fluxes()),
		"result", floats.Sum(res.Fluxes()),
	)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitInterrupted
	case domain.IsKind(err, domain.KindInvalidArgument):
		return ExitUsage
	default:
		return ExitFailure
	}
}
