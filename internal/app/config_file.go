package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the on-disk configuration schema.
type FileConfig struct {
	Input  string `yaml:"input" json:"input"`
	HTML   bool   `yaml:"html" json:"html"`
	Output string `yaml:"output" json:"output"`
	Format string `yaml:"format" json:"format"`
	Count  bool   `yaml:"count" json:"count"`
	Copy   bool   `yaml:"copy" json:"copy"`

	PDF struct {
		Output   string  `yaml:"output" json:"output"`
		Font     string  `yaml:"font" json:"font"`
		FontSize float64 `yaml:"fontSize" json:"fontSize"`
	} `yaml:"pdf" json:"pdf"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// DefaultConfigPath returns the first devextract config file found in the
// XDG config directories, or "" when there is none.
func DefaultConfigPath() string {
	for _, name := range []string{"devextract/config.yaml", "devextract/config.yml", "devextract/config.json"} {
		if p, err := xdg.SearchConfigFile(name); err == nil {
			return p
		}
	}
	return ""
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays file values onto cfg wherever cfg still holds its
// default. Booleans can only be switched on by the file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.InputPath == "" || cfg.InputPath == defaultInputPath) && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if (cfg.OutputPath == "" || cfg.OutputPath == defaultOutputPath) && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if (cfg.Format == "" || cfg.Format == defaultFormat) && fc.Format != "" {
		cfg.Format = fc.Format
	}
	if cfg.OutputPDFPath == "" && fc.PDF.Output != "" {
		cfg.OutputPDFPath = fc.PDF.Output
	}
	if cfg.PDFFontPath == "" && fc.PDF.Font != "" {
		cfg.PDFFontPath = fc.PDF.Font
	}
	if (cfg.PDFFontSize == 0 || cfg.PDFFontSize == defaultPDFFontSize) && fc.PDF.FontSize > 0 {
		cfg.PDFFontSize = fc.PDF.FontSize
	}
	if !cfg.HTML && fc.HTML {
		cfg.HTML = true
	}
	if !cfg.ShowCount && fc.Count {
		cfg.ShowCount = true
	}
	if !cfg.Copy && fc.Copy {
		cfg.Copy = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig rejects combinations the app cannot run.
func ValidateConfig(cfg Config) error {
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("config: unknown format %q (want %q or %q)", cfg.Format, FormatText, FormatJSON)
	}
	if cfg.PDFFontSize < 0 {
		return errors.New("config: pdf font size must not be negative")
	}
	if strings.TrimSpace(cfg.OutputPDFPath) != "" && strings.TrimSpace(cfg.PDFFontPath) == "" {
		return errors.New("config: pdf output needs a UTF-8 TrueType font (pdf.font)")
	}
	if cfg.Interactive && cfg.Text != "" {
		return errors.New("config: interactive mode does not take inline text")
	}
	return nil
}
