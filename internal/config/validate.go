package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend.base_url must be an absolute URL (got %q)", c.Backend.BaseURL)
	}

	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be > 0 (got %v)", c.Backend.Timeout)
	}

	if c.View.PageSize <= 0 {
		return fmt.Errorf("view.page_size must be > 0 (got %d)", c.View.PageSize)
	}
	if c.View.MaxPageSize < c.View.PageSize {
		return fmt.Errorf("view.max_page_size must be >= view.page_size (got %d < %d)",
			c.View.MaxPageSize, c.View.PageSize)
	}

	return nil
}
