package app

import (
	"os"
	"strconv"
	"strings"
)

// ApplyEnvOverrides overrides cfg fields with environment variables that are
// set. It runs after the config file overlay and before explicit flags, so
// the precedence is flags > env > file > defaults.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}

	if v := os.Getenv("DEVEXTRACT_INPUT"); v != "" {
		cfg.InputPath = v
	}
	if v := os.Getenv("DEVEXTRACT_OUTPUT"); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv("DEVEXTRACT_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("DEVEXTRACT_PDF_OUTPUT"); v != "" {
		cfg.OutputPDFPath = v
	}
	if v := os.Getenv("DEVEXTRACT_PDF_FONT"); v != "" {
		cfg.PDFFontPath = v
	}
	if v := strings.TrimSpace(os.Getenv("DEVEXTRACT_PDF_FONT_SIZE")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.PDFFontSize = f
		}
	}

	setBool := func(dst *bool, envKey string) {
		if s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey))); s != "" {
			switch s {
			case "1", "true", "yes", "on":
				*dst = true
			case "0", "false", "no", "off":
				*dst = false
			}
		}
	}
	setBool(&cfg.HTML, "DEVEXTRACT_HTML")
	setBool(&cfg.Copy, "DEVEXTRACT_COPY")
	setBool(&cfg.ShowCount, "DEVEXTRACT_COUNT")
	setBool(&cfg.Verbose, "VERBOSE")
}
