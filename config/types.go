package config

import "time"

// Config is the process configuration, corresponding to portfolio.yml.
type Config struct {
	LogLevel string        `yaml:"log_level" koanf:"log_level"`
	Server   ServerConfig  `yaml:"server" koanf:"server"`
	Storage  StorageConfig `yaml:"storage" koanf:"storage"`
	Cache    CacheConfig   `yaml:"cache" koanf:"cache"`
	Site     SiteConfig    `yaml:"site" koanf:"site"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr" koanf:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout" koanf:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" koanf:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
	AllowedOrigins  []string      `yaml:"allowed_origins,omitempty" koanf:"allowed_origins"`
	// CookieKey seals the visitor cookie. Empty generates a random key per
	// process, so visitors get new ids after a restart.
	CookieKey    string `yaml:"cookie_key,omitempty" koanf:"cookie_key"`
	CookieSecure bool   `yaml:"cookie_secure" koanf:"cookie_secure"`
}

// StorageConfig selects the preference backend: memory, sqlite or postgres.
type StorageConfig struct {
	Backend string `yaml:"backend" koanf:"backend"`
	DSN     string `yaml:"dsn" koanf:"dsn"`
}

// CacheConfig selects the optional cache: none, memory or redis.
type CacheConfig struct {
	Backend  string        `yaml:"backend" koanf:"backend"`
	Addr     string        `yaml:"addr" koanf:"addr"`
	Password string        `yaml:"password,omitempty" koanf:"password"`
	DB       int           `yaml:"db" koanf:"db"`
	TTL      time.Duration `yaml:"ttl" koanf:"ttl"`
}

// SiteConfig locates the page content and static assets.
type SiteConfig struct {
	ContentFile string `yaml:"content_file" koanf:"content_file"`
	AssetsDir   string `yaml:"assets_dir" koanf:"assets_dir"`
	OutputDir   string `yaml:"output_dir" koanf:"output_dir"`
	// AssetPatterns selects files under AssetsDir. Empty copies everything.
	AssetPatterns []string `yaml:"asset_patterns,omitempty" koanf:"asset_patterns"`
	Exclude       []string `yaml:"exclude,omitempty" koanf:"exclude"`
	WasmURL       string   `yaml:"wasm_url" koanf:"wasm_url"`
}
