// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"dietinterp/internal/version"
)

// Usage installs the help text on fs. Call fs.Usage() after fs.SetOutput.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() { PrintUsage(fs.Output(), fs, name) }
}

// PrintUsage writes the help text for fs to out.
func PrintUsage(out io.Writer, fs *flag.FlagSet, name string) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}

	fmt.Fprintf(out, "%s – interpolate a diet between two media\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintf(out, "Usage: %s [-m1 file] [-m2 file] [-n factor] [-o file]\n", name)
	fmt.Fprintln(out, "  flux = (1-n)·medium1 + n·medium2 over the union of reactions; missing flux counts as 0.")

	fmt.Fprintln(out, "\nInput:")
	fmt.Fprintf(out, "  -m1, --medium1 file     First medium (.qza, .csv, .tsv, .xlsx) [%s]\n", def("m1"))
	fmt.Fprintf(out, "  -m2, --medium2 file     Second medium [%s]\n", def("m2"))

	fmt.Fprintln(out, "\nBlend:")
	fmt.Fprintf(out, "  -n float                Interpolation factor in [0,1]; 0 = medium1, 1 = medium2 [%s]\n", def("n"))

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output file       Output table, '-' for stdout [%s]\n", def("o"))
	fmt.Fprintln(out, "      --format string     csv | tsv | json | xlsx [from -o extension, else csv]")
	fmt.Fprintf(out, "      --precision int     Digits after the decimal point (-1 = shortest exact) [%s]\n", def("precision"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintln(out, "      --config file       YAML defaults (medium1, medium2, n, output, format, precision)")
	fmt.Fprintf(out, "  -q, --quiet             Only log warnings and errors [%s]\n", def("quiet"))
	fmt.Fprintf(out, "      --debug             Verbose logging [%s]\n", def("debug"))
	fmt.Fprintln(out, "  -v, --version           Print version and exit")
	fmt.Fprintln(out, "  -h, --help              Show this help and exit")
}
