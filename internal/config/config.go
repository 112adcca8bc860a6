package config

import "time"

// Config is the root application configuration.
type Config struct {
	Backend BackendConfig `yaml:"backend"`
	View    ViewConfig    `yaml:"view"`
	Log     LogConfig     `yaml:"log"`
}

// BackendConfig holds the remote data backend settings.
type BackendConfig struct {
	BaseURL string        `yaml:"base_url" env:"BACKEND_BASE_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout"  env:"BACKEND_TIMEOUT"  env-default:"10s"`
}

// ViewConfig holds the derived-view defaults.
type ViewConfig struct {
	PageSize    int `yaml:"page_size"     env:"VIEW_PAGE_SIZE"     env-default:"10"`
	MaxPageSize int `yaml:"max_page_size" env:"VIEW_MAX_PAGE_SIZE" env-default:"100"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
