package errors_test

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/myrjola/planfit/internal/errors"
)

func TestWrapChain(t *testing.T) {
	sentinel := errors.NewSentinel("record not found")
	wrapped := errors.Wrap(sentinel, "load profile", slog.Int("user_id", 7))
	outer := errors.Wrap(wrapped, "compute metrics")

	if got := outer.Error(); got != "compute metrics: load profile: record not found" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(outer, sentinel) {
		t.Error("Is(outer, sentinel) = false, want true")
	}
	if errors.Unwrap(outer) != wrapped {
		t.Error("Unwrap(outer) did not return the inner error")
	}
}

func TestSlogError(t *testing.T) {
	err := errors.Wrap(errors.New("boom"), "save goal", slog.String("direction", "loss"))
	attr := errors.SlogError(err)

	if attr.Key != "error" {
		t.Fatalf("attr.Key = %q, want error", attr.Key)
	}
	rendered := attr.Value.String()
	if !strings.Contains(rendered, "save goal: boom") {
		t.Errorf("rendered error %q misses the message", rendered)
	}
	if !strings.Contains(rendered, "direction") {
		t.Errorf("rendered error %q misses the annotation", rendered)
	}
	if !strings.Contains(rendered, "annotatederror_test.go:") {
		t.Errorf("rendered error %q misses the wrap source", rendered)
	}
}

func TestSlogErrorNil(t *testing.T) {
	attr := errors.SlogError(nil)
	if !strings.Contains(attr.Value.String(), "<nil>") {
		t.Errorf("rendered nil error = %q", attr.Value.String())
	}
}

func TestDecoratePanic(t *testing.T) {
	var err error
	func() {
		defer func() {
			err = errors.DecoratePanic(recover())
		}()
		panic("unexpected template state")
	}()

	if err == nil {
		t.Fatal("DecoratePanic returned nil for a real panic")
	}
	if got := err.Error(); !strings.Contains(got, "unexpected template state") {
		t.Errorf("Error() = %q misses the panic value", got)
	}

	if errors.DecoratePanic(nil) != nil {
		t.Error("DecoratePanic(nil) != nil")
	}
}
