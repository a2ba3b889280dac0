package config

// Output formats understood by the greet and batch commands
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// IsValidFormat reports whether format is a known output format
func IsValidFormat(format string) bool {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Config provides read-only access to application configuration.
// The app layer doesn't depend on where the values came from.
type Config interface {
	Home() string        // Base directory (HELLO_HOME)
	StderrLevel() string // Stderr log level (HELLO_STDERR_LEVEL)
	Format() string      // Default output format (HELLO_FORMAT)
	JournalPath() string // Journal file under Home unless absolute, empty disables journaling (HELLO_JOURNAL)
	Normalize() bool     // NFC-normalize names before greeting (HELLO_NORMALIZE)

	// Metadata
	ConfigSource() string // Source of configuration: "yaml", "env", or "default"
	SettingPath() string  // Path to setting.yaml if loaded from file
}

// AppConfig is the concrete implementation of Config interface.
type AppConfig struct {
	home        string
	stderrLevel string
	format      string
	journalPath string
	normalize   bool

	configSource string
	settingPath  string
}

// NewAppConfig creates a new AppConfig with the given values
func NewAppConfig(
	home, stderrLevel, format, journalPath string,
	normalize bool,
	configSource, settingPath string,
) *AppConfig {
	return &AppConfig{
		home:         home,
		stderrLevel:  stderrLevel,
		format:       format,
		journalPath:  journalPath,
		normalize:    normalize,
		configSource: configSource,
		settingPath:  settingPath,
	}
}

// Default returns the configuration used when no setting file is available
func Default() *AppConfig {
	return NewAppConfig(".helloworld", "warn", FormatText, "", false, "default", "")
}

// Home returns the base directory
func (c *AppConfig) Home() string {
	return c.home
}

// StderrLevel returns the stderr log level
func (c *AppConfig) StderrLevel() string {
	return c.stderrLevel
}

// Format returns the default output format
func (c *AppConfig) Format() string {
	return c.format
}

// JournalPath returns the journal file path
func (c *AppConfig) JournalPath() string {
	return c.journalPath
}

// Normalize returns whether names are NFC-normalized
func (c *AppConfig) Normalize() bool {
	return c.normalize
}

// ConfigSource returns the source of configuration
func (c *AppConfig) ConfigSource() string {
	return c.configSource
}

// SettingPath returns the path to setting.yaml
func (c *AppConfig) SettingPath() string {
	return c.settingPath
}
