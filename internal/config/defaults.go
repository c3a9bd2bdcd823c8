package config

// DefaultExcludes are glob patterns never copied from the static directory.
var DefaultExcludes = []string{
	"**/.DS_Store",
	"**/.git/**",
	"**/*.swp",
	"**/*~",
	"**/Thumbs.db",
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteTitle:    "World War II History",
		ContentDir:   "content",
		StaticDir:    "static",
		OutputDir:    "public",
		Exclude:      append([]string(nil), DefaultExcludes...),
		DatabasePath: ".ww2site/queries.db",
		Server: ServerConfig{
			Port: 8080,
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatText,
		},
	}
}
