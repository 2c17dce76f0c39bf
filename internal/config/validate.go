package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	return c.validateDataset()
}

func (c *Config) validatePaths() error {
	if c.Paths.RootDir == "" {
		return errors.New("paths.root_dir must be set")
	}
	if c.Paths.CacheDir == "" {
		return errors.New("paths.cache_dir must be set")
	}
	return nil
}

func (c *Config) validateDataset() error {
	switch c.Dataset.Variant {
	case VariantDefault, Variant480p:
	default:
		return fmt.Errorf("dataset.variant must be %q or %q, got %q", VariantDefault, Variant480p, c.Dataset.Variant)
	}
	if c.Dataset.AnnotationsURL == "" {
		return errors.New("dataset.annotations_url must be set")
	}
	if c.VideosURL() == "" {
		return errors.New("dataset video url must be set for the selected variant")
	}
	if c.Dataset.DownloadTimeout <= 0 {
		return errors.New("dataset.download_timeout must be positive (seconds)")
	}
	return nil
}
