package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/devextract/internal/clipboard"
	"github.com/hyperifyio/devextract/internal/extract"
	"github.com/hyperifyio/devextract/internal/notify"
	"github.com/hyperifyio/devextract/internal/session"
)

// ErrNoDevanagari is returned when a run extracts nothing. The output is
// still written; the CLI maps this error to exit code 2.
var ErrNoDevanagari = errors.New("no Devanagari text found")

// App runs one extraction: one-shot from Config, or an interactive session.
// The exported fields default to the process streams and the system
// clipboard; tests replace them after New.
type App struct {
	cfg Config

	Stdin     io.Reader
	Stdout    io.Writer
	Clipboard session.ClipboardWriter
	Notifier  session.Notifier
}

// New validates cfg and wires the default capabilities. The system clipboard
// is only looked up when the run can copy.
func New(ctx context.Context, cfg Config) (*App, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	a := &App{
		cfg:      cfg,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Notifier: notify.Log{Logger: log.Logger},
	}
	if cfg.Copy || cfg.Interactive {
		w, err := clipboard.Detect()
		if err != nil {
			log.Warn().Err(err).Msg("clipboard unavailable; copy will fail")
			a.Clipboard = clipboard.Unsupported{}
		} else {
			log.Debug().Msg("system clipboard available")
			a.Clipboard = w
		}
	}
	return a, nil
}

func (a *App) controller(n session.Notifier) *session.Controller {
	return &session.Controller{
		Extractor: extract.DevanagariExtractor{},
		Clipboard: a.Clipboard,
		Notifier:  n,
	}
}

// Run performs one extraction from the configured input to the configured
// outputs, or starts an interactive session.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Interactive {
		return a.Interactive(ctx, a.Stdin, a.Stdout)
	}

	text, err := a.readInput()
	if err != nil {
		return err
	}

	ctrl := a.controller(a.Notifier)
	state := ctrl.SetInput(session.State{}, text)
	state, err = ctrl.Extract(ctx, state)
	if err != nil {
		if !errors.Is(err, session.ErrBlankInput) {
			return err
		}
		log.Warn().Msg("input is empty")
	}

	res := newResult(state.Output)
	out, err := render(a.cfg.Format, res, a.cfg.ShowCount)
	if err != nil {
		return err
	}
	if err := a.writeOutput(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Int("characters", res.Characters).Int("graphemes", res.Graphemes).Msg("extracted")

	if a.cfg.OutputPDFPath != "" {
		if err := writePDF(res, a.cfg.PDFFontPath, a.cfg.PDFFontSize, a.cfg.OutputPDFPath); err != nil {
			return err
		}
		log.Info().Str("out", a.cfg.OutputPDFPath).Msg("wrote pdf")
	}

	if state.Output == "" {
		return ErrNoDevanagari
	}

	if a.cfg.Copy {
		if _, err := ctrl.Copy(ctx, state); err != nil {
			return err
		}
	}
	return nil
}
