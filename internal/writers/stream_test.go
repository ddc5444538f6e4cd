package writers

import (
	"errors"
	"fmt"
	"io"
	"syscall"
	"testing"
)

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(fmt.Errorf("write stdout: %w", syscall.EPIPE)) {
		t.Fatal("wrapped EPIPE should count as broken pipe")
	}
	if !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("ErrClosedPipe should count as broken pipe")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("x")) {
		t.Fatal("false positive")
	}
}
