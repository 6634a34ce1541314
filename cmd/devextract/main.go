package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/devextract/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	fs := flag.NewFlagSet("devextract", flag.ExitOnError)
	opts := registerFlags(fs)
	_ = fs.Parse(os.Args[1:])

	if opts.version {
		fmt.Println(app.Version())
		return
	}

	cfg, err := buildConfig(fs, opts, os.Stdin)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg)
	stop()
	os.Exit(exitCode(err))
}

type options struct {
	cfg        app.Config
	configPath string
	envFiles   string
	version    bool
}

func registerFlags(fs *flag.FlagSet) *options {
	o := &options{cfg: app.DefaultConfig()}
	fs.StringVar(&o.cfg.InputPath, "input", o.cfg.InputPath, "Path to the input text; '-' reads stdin")
	fs.StringVar(&o.cfg.Text, "text", "", "Inline input text (takes precedence over -input)")
	fs.BoolVar(&o.cfg.HTML, "html", false, "Treat the input as HTML and extract from its readable text")
	fs.StringVar(&o.cfg.OutputPath, "output", o.cfg.OutputPath, "Path to write the extracted text; '-' writes stdout")
	fs.StringVar(&o.cfg.Format, "format", o.cfg.Format, "Output format: text or json")
	fs.BoolVar(&o.cfg.ShowCount, "count", false, "Print the character count after the text")
	fs.StringVar(&o.cfg.OutputPDFPath, "output.pdf", "", "Also write the extracted text as a PDF")
	fs.StringVar(&o.cfg.PDFFontPath, "pdf.font", "", "UTF-8 TrueType font with Devanagari glyphs for PDF output")
	fs.Float64Var(&o.cfg.PDFFontSize, "pdf.fontSize", o.cfg.PDFFontSize, "PDF font size in points")
	fs.BoolVar(&o.cfg.Copy, "copy", false, "Copy the extracted text to the system clipboard")
	fs.BoolVar(&o.cfg.Interactive, "i", false, "Interactive session (default when stdin is a terminal and no input is given)")
	fs.BoolVar(&o.cfg.Verbose, "v", false, "Verbose logging")
	fs.StringVar(&o.configPath, "config", "", "Path to a YAML or JSON config file (default: $XDG_CONFIG_HOME/devextract/config.yaml)")
	fs.StringVar(&o.envFiles, "env", ".env", "Comma-separated dotenv files to load")
	fs.BoolVar(&o.version, "version", false, "Print version and exit")
	return o
}

// buildConfig layers defaults, config file, environment and explicitly set
// flags, in increasing precedence.
func buildConfig(fs *flag.FlagSet, o *options, stdin *os.File) (app.Config, error) {
	if err := app.LoadEnvFiles(splitCSV(o.envFiles)...); err != nil {
		return app.Config{}, err
	}

	cfg := app.DefaultConfig()
	path := o.configPath
	if path == "" {
		path = app.DefaultConfigPath()
	}
	if path != "" {
		fc, err := app.LoadConfigFile(path)
		if err != nil {
			return app.Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		app.ApplyFileConfig(&cfg, fc)
		log.Debug().Str("path", path).Msg("loaded config file")
	}
	app.ApplyEnvOverrides(&cfg)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputPath = o.cfg.InputPath
		case "text":
			cfg.Text = o.cfg.Text
		case "html":
			cfg.HTML = o.cfg.HTML
		case "output":
			cfg.OutputPath = o.cfg.OutputPath
		case "format":
			cfg.Format = o.cfg.Format
		case "count":
			cfg.ShowCount = o.cfg.ShowCount
		case "output.pdf":
			cfg.OutputPDFPath = o.cfg.OutputPDFPath
		case "pdf.font":
			cfg.PDFFontPath = o.cfg.PDFFontPath
		case "pdf.fontSize":
			cfg.PDFFontSize = o.cfg.PDFFontSize
		case "copy":
			cfg.Copy = o.cfg.Copy
		case "i":
			cfg.Interactive = o.cfg.Interactive
		case "v":
			cfg.Verbose = o.cfg.Verbose
		}
	})

	// A bare invocation from a terminal starts a session instead of waiting
	// on stdin.
	if !cfg.Interactive && cfg.Text == "" && (cfg.InputPath == "" || cfg.InputPath == "-") && stdin != nil && isTerminal(stdin.Fd()) {
		cfg.Interactive = true
	}

	if err := app.ValidateConfig(cfg); err != nil {
		return app.Config{}, err
	}
	return cfg, nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func run(ctx context.Context, cfg app.Config) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}

// exitCode maps run errors to the process exit code: 0 on success, 2 when
// nothing was extracted, 1 otherwise.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, app.ErrNoDevanagari):
		// already reported through the notifier
		return 2
	default:
		log.Error().Err(err).Msg("run failed")
		return 1
	}
}

func splitCSV(s string) []string {
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
