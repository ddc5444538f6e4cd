// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrLoad            = errors.New("load failure")
	ErrWrite           = errors.New("write failure")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidArgument ErrorKind = "invalid_argument"
	KindLoad            ErrorKind = "load_failure"
	KindWrite           ErrorKind = "write_failure"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // optional: input or output file
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match the kind's sentinel without callers importing OpError.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	case ErrLoad:
		return e.Kind == KindLoad
	case ErrWrite:
		return e.Kind == KindWrite
	}
	return false
}

// IsKind reports whether err (or anything it wraps) is an OpError of kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// InvalidArgument builds an OpError of KindInvalidArgument.
func InvalidArgument(op, format string, a ...any) error {
	return &OpError{Op: op, Kind: KindInvalidArgument, Err: fmt.Errorf(format, a...)}
}

// LoadFailure wraps err as a KindLoad OpError for path. A nil err stays nil.
func LoadFailure(op, path string, err error) error {
	if err == nil {
		return nil
	}
	if IsKind(err, KindLoad) {
		return err
	}
	return &OpError{Op: op, Kind: KindLoad, Path: path, Err: err}
}

// WriteFailure wraps err as a KindWrite OpError for path. A nil err stays nil.
func WriteFailure(op, path string, err error) error {
	if err == nil {
		return nil
	}
	if IsKind(err, KindWrite) {
		return err
	}
	return &OpError{Op: op, Kind: KindWrite, Path: path, Err: err}
}
