package config

const (
	defaultDataDir               = "~/.local/share/reelcat"
	defaultLogDir                = "~/.local/share/reelcat/logs"
	defaultStoreBackend          = "http"
	defaultStoreBaseURL          = "http://localhost:3000"
	defaultStoreRequestTimeout   = 10
	defaultStoreDBPath           = "~/.local/share/reelcat/catalog.db"
	defaultReassignRetryAttempts = 3
	defaultRetryBaseDelayMS      = 500
	defaultRetryMaxDelayMS       = 5000
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Store: Store{
			Backend:        defaultStoreBackend,
			BaseURL:        defaultStoreBaseURL,
			RequestTimeout: defaultStoreRequestTimeout,
			DBPath:         defaultStoreDBPath,
		},
		Mutation: Mutation{
			ReassignRetryAttempts: defaultReassignRetryAttempts,
			RetryBaseDelayMS:      defaultRetryBaseDelayMS,
			RetryMaxDelayMS:       defaultRetryMaxDelayMS,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
