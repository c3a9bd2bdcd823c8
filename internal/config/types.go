package config

// LogFormat selects the slog handler used for application logs.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config is the top-level ww2site configuration, corresponding to .ww2site.yml.
type Config struct {
	SiteTitle    string       `yaml:"site_title" koanf:"site_title"`
	CatalogFile  string       `yaml:"catalog_file" koanf:"catalog_file"` // empty means the built-in catalog
	ContentDir   string       `yaml:"content_dir" koanf:"content_dir"`
	StaticDir    string       `yaml:"static_dir" koanf:"static_dir"`
	OutputDir    string       `yaml:"output_dir" koanf:"output_dir"`
	Exclude      []string     `yaml:"exclude" koanf:"exclude"`
	DatabasePath string       `yaml:"database_path" koanf:"database_path"`
	Server       ServerConfig `yaml:"server" koanf:"server"`
	Log          LogConfig    `yaml:"log" koanf:"log"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
