package config

// Config provides read-only access to application configuration.
// This interface abstracts the configuration source (YAML file, ENV,
// defaults) so the rest of the app doesn't depend on how values were
// loaded.
type Config interface {
	// APIURL is the payout backend base URL (PAYFLOW_API_URL).
	APIURL() string
	// APIKey is the bearer token for the backend (PAYFLOW_API_KEY).
	APIKey() string
	// WalletAgent selects the wallet agent kind (PAYFLOW_WALLET_AGENT).
	WalletAgent() string
	// LogLevel is the diagnostic log level (PAYFLOW_LOG_LEVEL).
	LogLevel() string
	// JournalPath, when set, is where the session activity log is
	// exported on exit (PAYFLOW_JOURNAL_PATH).
	JournalPath() string

	// ConfigSource reports where the configuration came from: "file",
	// "env" or "default".
	ConfigSource() string
	// SettingPath is the config file path when ConfigSource is "file".
	SettingPath() string
}

// AppConfig is the concrete implementation of Config.
type AppConfig struct {
	apiURL      string
	apiKey      string
	walletAgent string
	logLevel    string
	journalPath string

	configSource string
	settingPath  string
}

// NewAppConfig creates an AppConfig with explicit values. Used by tests
// and by the loader.
func NewAppConfig(apiURL, apiKey, walletAgent, logLevel, journalPath, configSource, settingPath string) *AppConfig {
	return &AppConfig{
		apiURL:       apiURL,
		apiKey:       apiKey,
		walletAgent:  walletAgent,
		logLevel:     logLevel,
		journalPath:  journalPath,
		configSource: configSource,
		settingPath:  settingPath,
	}
}

// APIURL returns the backend base URL.
func (c *AppConfig) APIURL() string { return c.apiURL }

// APIKey returns the backend bearer token.
func (c *AppConfig) APIKey() string { return c.apiKey }

// WalletAgent returns the wallet agent kind.
func (c *AppConfig) WalletAgent() string { return c.walletAgent }

// LogLevel returns the diagnostic log level.
func (c *AppConfig) LogLevel() string { return c.logLevel }

// JournalPath returns the optional journal export path.
func (c *AppConfig) JournalPath() string { return c.journalPath }

// ConfigSource returns where the configuration came from.
func (c *AppConfig) ConfigSource() string { return c.configSource }

// SettingPath returns the loaded config file path, if any.
func (c *AppConfig) SettingPath() string { return c.settingPath }
