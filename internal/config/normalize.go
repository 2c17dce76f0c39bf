package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDataset()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.RootDir) == "" {
		c.Paths.RootDir = defaultRootDir
	}
	if c.Paths.RootDir, err = expandPath(c.Paths.RootDir); err != nil {
		return fmt.Errorf("paths.root_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CacheDir) == "" {
		c.Paths.CacheDir = defaultCacheDir
	}
	if c.Paths.CacheDir, err = expandPath(c.Paths.CacheDir); err != nil {
		return fmt.Errorf("paths.cache_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDataset() {
	c.Dataset.Variant = strings.ToLower(strings.TrimSpace(c.Dataset.Variant))
	if c.Dataset.Variant == "" {
		c.Dataset.Variant = VariantDefault
	}
	c.Dataset.AnnotationsURL = strings.TrimSpace(c.Dataset.AnnotationsURL)
	if c.Dataset.AnnotationsURL == "" {
		c.Dataset.AnnotationsURL = defaultAnnotationsURL
	}
	c.Dataset.VideosURL = strings.TrimSpace(c.Dataset.VideosURL)
	if c.Dataset.VideosURL == "" {
		c.Dataset.VideosURL = defaultVideosURL
	}
	c.Dataset.VideosURL480p = strings.TrimSpace(c.Dataset.VideosURL480p)
	if c.Dataset.VideosURL480p == "" {
		c.Dataset.VideosURL480p = defaultVideosURL480p
	}
	if c.Dataset.DownloadTimeout <= 0 {
		c.Dataset.DownloadTimeout = defaultDownloadTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
