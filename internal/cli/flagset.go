package cli

import (
	"flag"
	"io"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError and the tool's
// usage text. Parse errors are not echoed; callers report them.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	Usage(fs, name)
	return fs
}
