package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"charades/internal/fileutil"
)

// HTTPDoer describes the HTTP client used by the downloader.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Downloader streams remote archives to local files with progress reporting.
type Downloader struct {
	client   HTTPDoer
	logger   *slog.Logger
	progress bool
}

// New returns a downloader using client. Progress bars render only when
// stderr is a terminal.
func New(client HTTPDoer, logger *slog.Logger) *Downloader {
	if client == nil {
		client = http.DefaultClient
	}
	fd := os.Stderr.Fd()
	return &Downloader{
		client:   client,
		logger:   logger,
		progress: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// SetProgress overrides terminal detection.
func (d *Downloader) SetProgress(enabled bool) {
	d.progress = enabled
}

// Fetch downloads url into dest, writing through a .partial file that is
// renamed into place only after the body is fully received. The partial file
// is removed on failure. Returns the number of bytes written.
func (d *Downloader) Fetch(ctx context.Context, url, dest string) (int64, error) {
	if err := fileutil.EnsureDir(filepath.Dir(dest)); err != nil {
		return 0, fmt.Errorf("ensure download directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build download request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("download %s: unexpected status %d", url, resp.StatusCode)
	}

	partial := dest + ".partial"
	file, err := os.OpenFile(partial, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("create partial file: %w", err)
	}

	written, err := d.copyBody(file, resp, filepath.Base(dest))
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && resp.ContentLength > 0 && written != resp.ContentLength {
		err = fmt.Errorf("short download: got %d of %d bytes", written, resp.ContentLength)
	}
	if err != nil {
		_ = os.Remove(partial)
		return 0, fmt.Errorf("download %s: %w", url, err)
	}

	if err := fileutil.MoveFile(partial, dest); err != nil {
		_ = os.Remove(partial)
		return 0, fmt.Errorf("finalize download: %w", err)
	}

	if d.logger != nil {
		d.logger.Info("download complete",
			slog.String("url", url),
			slog.String("dest", dest),
			slog.String("size", humanize.Bytes(uint64(written))))
	}
	return written, nil
}

func (d *Downloader) copyBody(file *os.File, resp *http.Response, label string) (int64, error) {
	if !d.progress {
		return io.Copy(file, resp.Body)
	}

	bar := progressbar.NewOptions64(resp.ContentLength,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
	defer func() { _ = bar.Finish() }()
	return io.Copy(io.MultiWriter(file, bar), resp.Body)
}
