package cli

import (
	"os"

	"github.com/spf13/pflag"

	"gitignore-tui/internal/config"
)

// Viper keys mirror the TOML layout so GITIGNORE_TUI_API_BASE_URL and
// friends line up with [api] base_url
const (
	keyBaseURL      = "api.base_url"
	keyTimeout      = "api.timeout"
	keyUserAgent    = "api.user_agent"
	keyOutputPath   = "output.path"
	keyUsagePath    = "usage.path"
	keyTickInterval = "ui.tick_interval"
	keyErrorTimeout = "ui.error_timeout"
	keyAltScreen    = "ui.alt_screen"
	keyGlamourStyle = "ui.glamour_style"
	keyLogFile      = "logging.file"
	keyTrace        = "logging.trace"
)

func (a *app) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultPath()+", or GITIGNORE_TUI_CONFIG)")
	fs.String("base-url", "", "template service root URL")
	fs.Duration("timeout", 0, "timeout for each request to the template service")
	fs.StringP("output", "o", "", "file the generated .gitignore is saved to")
	fs.String("usage-file", "", "file that records how often templates are picked")
	fs.String("log-file", "", "debug log file")
	fs.Bool("trace", false, "write structured trace entries to the debug log")

	_ = a.v.BindPFlag(keyBaseURL, fs.Lookup("base-url"))
	_ = a.v.BindPFlag(keyTimeout, fs.Lookup("timeout"))
	_ = a.v.BindPFlag(keyOutputPath, fs.Lookup("output"))
	_ = a.v.BindPFlag(keyUsagePath, fs.Lookup("usage-file"))
	_ = a.v.BindPFlag(keyLogFile, fs.Lookup("log-file"))
	_ = a.v.BindPFlag(keyTrace, fs.Lookup("trace"))
}

// loadConfig reads the config file and overlays every key that viper saw in
// the environment or on the command line
func (a *app) loadConfig() (*config.Config, error) {
	path := a.configPath
	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}
	cfg, err := config.NewConfigService(path).Load()
	if err != nil {
		return nil, err
	}

	v := a.v
	if v.IsSet(keyBaseURL) {
		cfg.API.BaseURL = v.GetString(keyBaseURL)
	}
	if v.IsSet(keyTimeout) {
		cfg.API.Timeout.Duration = v.GetDuration(keyTimeout)
	}
	if v.IsSet(keyUserAgent) {
		cfg.API.UserAgent = v.GetString(keyUserAgent)
	}
	if v.IsSet(keyOutputPath) {
		cfg.Output.Path = v.GetString(keyOutputPath)
	}
	if v.IsSet(keyUsagePath) {
		cfg.Usage.Path = v.GetString(keyUsagePath)
	}
	if v.IsSet(keyTickInterval) {
		cfg.UI.TickInterval.Duration = v.GetDuration(keyTickInterval)
	}
	if v.IsSet(keyErrorTimeout) {
		cfg.UI.ErrorTimeout.Duration = v.GetDuration(keyErrorTimeout)
	}
	if v.IsSet(keyAltScreen) {
		cfg.UI.AltScreen = v.GetBool(keyAltScreen)
	}
	if v.IsSet(keyGlamourStyle) {
		cfg.UI.GlamourStyle = v.GetString(keyGlamourStyle)
	}
	if v.IsSet(keyLogFile) {
		cfg.Logging.File = v.GetString(keyLogFile)
	}
	if v.IsSet(keyTrace) {
		cfg.Logging.Trace = v.GetBool(keyTrace)
	}

	// short forms kept for scripts and the end-to-end harness
	if os.Getenv(envPrefix+"_NO_ALTSCREEN") != "" {
		cfg.UI.AltScreen = false
	}
	if os.Getenv(envPrefix+"_TRACE") == "1" {
		cfg.Logging.Trace = true
	}

	cfg.Normalize()
	return cfg, nil
}

func (a *app) configFile() string {
	if a.configPath != "" {
		return a.configPath
	}
	if env := os.Getenv(envPrefix + "_CONFIG"); env != "" {
		return env
	}
	return config.DefaultPath()
}
