package clipboard

import (
	"context"
	"errors"
	"testing"
)

func TestDetect(t *testing.T) {
	if _, err := detect(true); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	w, err := detect(false)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if w == nil {
		t.Fatalf("expected a writer")
	}
}

func TestSystem_WritesText(t *testing.T) {
	var got string
	w := &System{write: func(s string) error { got = s; return nil }}
	if err := w.WriteText(context.Background(), "नमस्ते मैथिली"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got != "नमस्ते मैथिली" {
		t.Fatalf("unexpected clipboard contents %q", got)
	}
}

func TestSystem_ReportsFailure(t *testing.T) {
	denied := errors.New("denied")
	w := &System{write: func(string) error { return denied }}
	if err := w.WriteText(context.Background(), "क"); !errors.Is(err, denied) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestSystem_CancelledContext(t *testing.T) {
	called := false
	w := &System{write: func(string) error { called = true; return nil }}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.WriteText(ctx, "क"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if called {
		t.Fatalf("clipboard written after cancel")
	}
}

func TestUnsupportedAndMemory(t *testing.T) {
	if err := (Unsupported{}).WriteText(context.Background(), "क"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	var m Memory
	if err := m.WriteText(context.Background(), "क"); err != nil {
		t.Fatalf("memory write: %v", err)
	}
	if m.Text() != "क" {
		t.Fatalf("unexpected memory text %q", m.Text())
	}
}
