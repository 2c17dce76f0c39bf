package fetch

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"

	"charades/internal/fileutil"
)

// Rough extracted-size estimates per video variant, used only for the
// free-space warning before a download starts.
const (
	estimatedBytesDefault = 80 << 30
	estimatedBytes480p    = 15 << 30
)

// preflight ensures root exists and is writable, and warns when the
// filesystem looks too small for the selected variant. Low space is not
// fatal: the estimate is coarse and the user may know better.
func preflight(root string, needBytes uint64, logger *slog.Logger) error {
	if err := fileutil.EnsureDir(root); err != nil {
		return fmt.Errorf("create dataset root: %w", err)
	}
	if err := unix.Access(root, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("dataset root %s is not writable: %w", root, err)
	}

	var st unix.Statfs_t
	if err := unix.Statfs(root, &st); err != nil {
		return fmt.Errorf("statfs %s: %w", root, err)
	}
	free := st.Bavail * uint64(st.Bsize)
	if free < needBytes {
		logger.Warn("free disk space may be insufficient",
			slog.String("root", root),
			slog.String("free", humanize.Bytes(free)),
			slog.String("estimated_need", humanize.Bytes(needBytes)))
	}
	return nil
}
