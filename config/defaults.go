package config

import "time"

// DefaultPath is where the CLI looks for the config file.
const DefaultPath = "portfolio.yml"

// DefaultConfig returns a Config that serves the built-in content from
// memory storage on :8080.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Storage: StorageConfig{
			Backend: "memory",
			DSN:     "portfolio.db",
		},
		Cache: CacheConfig{
			Backend: "none",
			Addr:    "localhost:6379",
			TTL:     24 * time.Hour,
		},
		Site: SiteConfig{
			AssetsDir: "assets",
			OutputDir: "public",
			WasmURL:   "portfolio.wasm",
		},
	}
}
