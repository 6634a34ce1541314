package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/devextract/internal/extract"
)

// CopyConfirmFor is how long the copy confirmation stays visible after a
// successful copy.
const CopyConfirmFor = 2 * time.Second

var (
	// ErrBlankInput is returned by Extract when the input holds nothing but
	// whitespace.
	ErrBlankInput = errors.New("input is empty")
	// ErrNothingToCopy is returned by Copy when there is no extracted text.
	ErrNothingToCopy = errors.New("nothing to copy")
)

// Variant selects how a notification is presented.
type Variant int

const (
	Default Variant = iota
	Destructive
)

// Notification is a short user-facing message.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// ClipboardWriter places text on a clipboard.
type ClipboardWriter interface {
	WriteText(ctx context.Context, text string) error
}

// Notifier shows notifications to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// State holds the cells of one session: the text being edited, the last
// extraction result and when the result was last copied. Handlers take a
// State and return the next one; they never mutate shared state.
type State struct {
	Input    string
	Output   string
	CopiedAt time.Time
}

// Controller wires the actions of a session to its capabilities.
type Controller struct {
	Extractor extract.Extractor
	Clipboard ClipboardWriter
	Notifier  Notifier
	// Now defaults to time.Now.
	Now func() time.Time
}

var (
	nothingFound = Notification{
		Title:       "No Devanagari text found",
		Description: "The input doesn't contain any Devanagari characters.",
		Variant:     Destructive,
	}
	copied = Notification{
		Title:       "Copied!",
		Description: "Devanagari text copied to clipboard.",
	}
)

// SetInput replaces the input cell.
func (c *Controller) SetInput(s State, text string) State {
	s.Input = text
	return s
}

// Extract runs the extractor over the input and stores the result. An empty
// result notifies the user that nothing was found.
func (c *Controller) Extract(ctx context.Context, s State) (State, error) {
	if strings.TrimFunc(s.Input, extract.IsSpace) == "" {
		return s, ErrBlankInput
	}
	x := c.Extractor
	if x == nil {
		x = extract.DevanagariExtractor{}
	}
	s.Output = x.Extract(s.Input)
	log.Debug().Int("input_bytes", len(s.Input)).Int("characters", extract.CharCount(s.Output)).Msg("extracted")
	if s.Output == "" {
		c.notify(ctx, nothingFound)
	}
	return s, nil
}

// Clear empties every cell.
func (c *Controller) Clear(s State) State {
	return State{}
}

// Copy writes the output to the clipboard. The state is unchanged when the
// clipboard write fails.
func (c *Controller) Copy(ctx context.Context, s State) (State, error) {
	if s.Output == "" {
		return s, ErrNothingToCopy
	}
	if c.Clipboard == nil {
		return s, errors.New("copy: no clipboard configured")
	}
	if err := c.Clipboard.WriteText(ctx, s.Output); err != nil {
		return s, fmt.Errorf("copy: %w", err)
	}
	s.CopiedAt = c.now()
	c.notify(ctx, copied)
	return s, nil
}

// Copied reports whether the copy confirmation is still showing at now.
func (c *Controller) Copied(s State, now time.Time) bool {
	if s.CopiedAt.IsZero() {
		return false
	}
	return now.Sub(s.CopiedAt) < CopyConfirmFor
}

// CharCount is the display count of the output: codepoints, whitespace
// excluded.
func (c *Controller) CharCount(s State) int {
	return extract.CharCount(s.Output)
}

func (c *Controller) notify(ctx context.Context, n Notification) {
	if c.Notifier != nil {
		c.Notifier.Notify(ctx, n)
	}
}

func (c *Controller) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
