package config

const (
	defaultLogDir           = "~/.local/share/memorylane/logs"
	defaultLogRetentionDays = 30
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultAPIBind          = "127.0.0.1:7490"

	defaultStorageBackend        = BackendLocal
	defaultStorageFolder         = "memories"
	defaultStorageRoot           = "~/Pictures/memorylane"
	defaultStorageBaseURL        = "/photos"
	defaultFetchTimeoutSeconds   = 30
	defaultStorageMaxConcurrency = 8

	defaultFirebaseEndpoint = "https://firebasestorage.googleapis.com"

	defaultAlbumTitle = "Our Journey"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Storage: Storage{
			Backend:             defaultStorageBackend,
			Folder:              defaultStorageFolder,
			Root:                defaultStorageRoot,
			BaseURL:             defaultStorageBaseURL,
			FetchTimeoutSeconds: defaultFetchTimeoutSeconds,
			MaxConcurrency:      defaultStorageMaxConcurrency,
		},
		Firebase: Firebase{
			Endpoint: defaultFirebaseEndpoint,
		},
		Album: Album{
			Title: defaultAlbumTitle,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
