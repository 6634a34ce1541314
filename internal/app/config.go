package app

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Defaults shared by the flag set and the config file overlay.
const (
	defaultInputPath   = "-"
	defaultOutputPath  = "-"
	defaultFormat      = FormatText
	defaultPDFFontSize = 14.0
)

// Config holds runtime configuration for the application.
type Config struct {
	// Input: inline Text wins over InputPath; "-" reads stdin.
	InputPath string
	Text      string
	HTML      bool

	// Output: "-" writes stdout.
	OutputPath string
	Format     string
	ShowCount  bool

	// PDF export
	OutputPDFPath string
	PDFFontPath   string
	PDFFontSize   float64

	// Behavior
	Copy        bool
	Interactive bool
	Verbose     bool
}

// DefaultConfig returns the configuration used when nothing else is set.
func DefaultConfig() Config {
	return Config{
		InputPath:   defaultInputPath,
		OutputPath:  defaultOutputPath,
		Format:      defaultFormat,
		PDFFontSize: defaultPDFFontSize,
	}
}
