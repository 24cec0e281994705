package config

const (
	defaultDataDir      = "~/.local/share/discbin"
	defaultLogDir       = "~/.local/share/discbin/logs"
	defaultAPIBind      = "127.0.0.1:7410"
	defaultIssuer       = "discbin"
	defaultRememberDays = 30
	defaultCurrency     = "EUR"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Session: Session{
			Issuer:       defaultIssuer,
			RememberDays: defaultRememberDays,
		},
		Catalog: Catalog{
			Currency: defaultCurrency,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
