// internal/writers/file.go
package writers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"dietinterp/internal/domain"
	"dietinterp/internal/medium"
)

// Stdout is the output path that streams to the process' stdout.
const Stdout = "-"

// WriteFile renders m into path, replacing any existing file. The table is
// written to a temp file in the same directory and renamed into place.
// Failures are KindWrite OpErrors and leave no file behind.
func WriteFile(path, format string, m medium.Medium, o Options) error {
	if !Known(format) {
		return domain.WriteFailure("writers.write_file", path, fmt.Errorf("unknown output format %q", format))
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return domain.WriteFailure("writers.create", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	bw := bufio.NewWriter(tmp)
	if err := Write(format, bw, m, o); err != nil {
		_ = tmp.Close()
		cleanup()
		return domain.WriteFailure("writers.render", path, err)
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		cleanup()
		return domain.WriteFailure("writers.flush", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		cleanup()
		return domain.WriteFailure("writers.chmod", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return domain.WriteFailure("writers.close", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return domain.WriteFailure("writers.rename", path, err)
	}
	return nil
}

// WriteStream renders m to w (used for "-o -"). A reader that closes the
// pipe early is not an error.
func WriteStream(w io.Writer, format string, m medium.Medium, o Options) error {
	bw := bufio.NewWriter(w)
	err := Write(format, bw, m, o)
	if err == nil {
		err = bw.Flush()
	}
	if err != nil && !IsBrokenPipe(err) {
		return domain.WriteFailure("writers.stream", Stdout, err)
	}
	return nil
}

// IsBrokenPipe reports whether err comes from a reader (like `head`) that
// closed stdout early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
