// Package errors provides error wrapping with slog annotations and source
// locations so that failures can be logged with full context at the edge of
// the application instead of formatting strings deep in the call stack.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// annotatedError carries a message, optional slog attributes, and the source
// location of the annotation site.
type annotatedError struct {
	msg    string
	cause  error
	attrs  []slog.Attr
	source string
}

// New returns an error that formats as the given text. It mirrors
// [errors.New] so that callers don't need to import both packages.
func New(text string) error {
	return errors.New(text)
}

// NewSentinel creates a sentinel error meant to be compared with [Is].
func NewSentinel(msg string) error {
	return &annotatedError{
		msg:    msg,
		cause:  nil,
		attrs:  nil,
		source: callerSource(2), //nolint:mnd // skip callerSource and NewSentinel.
	}
}

// Wrap annotates err with a message and optional slog attributes. The source
// location of the Wrap call is recorded for logging with [SlogError].
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		msg:    msg,
		cause:  err,
		attrs:  attrs,
		source: callerSource(2), //nolint:mnd // skip callerSource and Wrap.
	}
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// Is delegates to [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As delegates to [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target) //nolint:errorlint // thin delegation.
}

// Unwrap delegates to [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join delegates to [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// SlogError converts an error into a [slog.Attr] group containing the error
// message, all annotations collected from the wrap chain, and the source
// location closest to the root cause.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	var (
		annotations []any
		source      string
	)
	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		if annotated, ok := unwrapped.(*annotatedError); ok { //nolint:errorlint // walking one link at a time.
			for _, attr := range annotated.attrs {
				annotations = append(annotations, attr)
			}
			if annotated.source != "" {
				source = annotated.source
			}
		}
	}

	attrs := []any{slog.String("message", err.Error())}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Group("annotations", annotations...))
	}
	return slog.Group("error", attrs...)
}

// DecoratePanic converts a recovered panic value into an error annotated with
// the source location of the panic site.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}

	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("%v", recovered)
	}

	return &annotatedError{
		msg:    "panic",
		cause:  err,
		attrs:  nil,
		source: panicSource(),
	}
}

// callerSource returns "file.go:line" for the caller skip frames up.
func callerSource(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
		file = file[idx+1:]
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// panicSource walks the stack looking for the frame that triggered the
// current panic, i.e. the first frame above runtime.gopanic.
func panicSource() string {
	const maxDepth = 32
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(1, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	sawPanic := false
	for {
		frame, more := frames.Next()
		if sawPanic && !strings.HasPrefix(frame.Function, "runtime.") {
			file := frame.File
			if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
				file = file[idx+1:]
			}
			return fmt.Sprintf("%s:%d", file, frame.Line)
		}
		if strings.HasSuffix(frame.Function, "gopanic") {
			sawPanic = true
		}
		if !more {
			return ""
		}
	}
}
