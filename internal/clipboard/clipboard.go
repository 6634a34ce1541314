// Package clipboard provides the clipboard writers used by copy actions.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when the platform offers no clipboard.
var ErrUnsupported = errors.New("clipboard: no supported clipboard utility found")

// Writer places text on a clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// System writes to the operating system clipboard.
type System struct {
	// write defaults to clipboard.WriteAll.
	write func(string) error
}

func (w *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	write := w.write
	if write == nil {
		write = clipboard.WriteAll
	}
	if err := write(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// Detect returns the system clipboard, or ErrUnsupported when no clipboard
// utility was found at startup.
func Detect() (*System, error) {
	return detect(clipboard.Unsupported)
}

func detect(unsupported bool) (*System, error) {
	if unsupported {
		return nil, ErrUnsupported
	}
	return &System{}, nil
}

// Unsupported is the Writer used when the platform offers no clipboard.
type Unsupported struct{}

func (Unsupported) WriteText(context.Context, string) error { return ErrUnsupported }

// Memory keeps the last copied text in process.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) WriteText(_ context.Context, text string) error {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
	return nil
}

// Text returns the last copied text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
