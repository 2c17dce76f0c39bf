package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"charades/internal/archive"
	"charades/internal/config"
	"charades/internal/dataset"
	"charades/internal/download"
	"charades/internal/logging"
)

// ErrFetchInProgress reports that another process holds the fetch lock.
var ErrFetchInProgress = errors.New("another fetch is already running")

// Fetcher downloads and extracts the annotation and video bundles into the
// configured dataset root.
type Fetcher struct {
	cfg        *config.Config
	downloader *download.Downloader
	logger     *slog.Logger
}

// New returns a fetcher. downloader may be nil, in which case a default
// HTTP-backed one is constructed.
func New(cfg *config.Config, downloader *download.Downloader, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if downloader == nil {
		downloader = download.New(nil, logger)
	}
	return &Fetcher{cfg: cfg, downloader: downloader, logger: logger}
}

// EnsureLocal makes the extracted dataset available under the configured
// root, downloading and extracting the bundles unless the layout is already
// present. Concurrent fetches are serialized by a lock file in the cache
// directory.
func (f *Fetcher) EnsureLocal(ctx context.Context) error {
	logger := logging.WithComponent(f.logger, "fetch").With(slog.String("job_id", uuid.NewString()))
	layout := dataset.Layout{Root: f.cfg.Paths.RootDir}

	if err := layout.Verify(); err == nil {
		logger.Info("dataset already present", slog.String("root", layout.Root))
		return nil
	}

	needBytes := uint64(estimatedBytesDefault)
	if f.cfg.Dataset.Variant == config.Variant480p {
		needBytes = estimatedBytes480p
	}
	if err := preflight(layout.Root, needBytes, logger); err != nil {
		return err
	}

	lock := flock.New(filepath.Join(f.cfg.Paths.CacheDir, "fetch.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire fetch lock: %w", err)
	}
	if !locked {
		return ErrFetchInProgress
	}
	defer func() { _ = lock.Unlock() }()

	logger.Info("fetching dataset",
		slog.String("variant", f.cfg.Dataset.Variant),
		slog.String("root", layout.Root))

	if err := f.fetchBundle(ctx, logger, f.cfg.Dataset.AnnotationsURL, layout.Root); err != nil {
		return err
	}
	if err := f.fetchBundle(ctx, logger, f.cfg.VideosURL(), layout.Root); err != nil {
		return err
	}
	f.adoptVariantVideoDir(layout, logger)

	if err := layout.Verify(); err != nil {
		return fmt.Errorf("dataset incomplete after extraction: %w", err)
	}
	logger.Info("dataset ready", slog.String("root", layout.Root))
	return nil
}

func (f *Fetcher) fetchBundle(ctx context.Context, logger *slog.Logger, bundleURL, root string) error {
	name, err := bundleFileName(bundleURL)
	if err != nil {
		return err
	}
	dest := filepath.Join(f.cfg.Paths.CacheDir, name)

	if _, err := os.Stat(dest); err == nil {
		logger.Info("bundle already cached", slog.String("bundle", name))
	} else {
		timeout := time.Duration(f.cfg.Dataset.DownloadTimeout) * time.Second
		fetchCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if _, err := f.downloader.Fetch(fetchCtx, bundleURL, dest); err != nil {
			return err
		}
	}

	logger.Info("extracting bundle", slog.String("bundle", name))
	if err := archive.Unzip(dest, root); err != nil {
		return err
	}
	return nil
}

// adoptVariantVideoDir renames the 480p bundle's Charades_v1_480 directory to
// the canonical Charades_v1 location so both variants share one layout.
func (f *Fetcher) adoptVariantVideoDir(layout dataset.Layout, logger *slog.Logger) {
	canonical := layout.VideosDir()
	if _, err := os.Stat(canonical); err == nil {
		return
	}
	variantDir := filepath.Join(layout.Root, "Charades_v1_480")
	if _, err := os.Stat(variantDir); err != nil {
		return
	}
	if err := os.Rename(variantDir, canonical); err != nil {
		logger.Warn("could not rename variant video directory", slog.Any("error", err))
		return
	}
	logger.Info("adopted 480p video directory", slog.String("dir", canonical))
}

func bundleFileName(bundleURL string) (string, error) {
	parsed, err := url.Parse(bundleURL)
	if err != nil {
		return "", fmt.Errorf("parse bundle url %q: %w", bundleURL, err)
	}
	name := path.Base(parsed.Path)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("bundle url %q has no file name", bundleURL)
	}
	return name, nil
}
