package domain

// Settings is the immutable bootstrapper configuration, constructed once at
// startup from hoist.yaml plus environment overrides.
type Settings struct {
	// UpstreamURL is the forge SDK repository to clone from.
	UpstreamURL string

	// StorageBaseURL is the base location for artifact bundle downloads.
	StorageBaseURL string
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		UpstreamURL:    DefaultUpstreamURL,
		StorageBaseURL: DefaultStorageBaseURL,
	}
}
