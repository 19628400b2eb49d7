// Package store persists workbench artifacts: device reports, saved logcat
// dumps, screenshots and screen recordings.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/openclaw/workbench/internal/domain"
)

// Ensure Store implements domain.ArtifactStore.
var _ domain.ArtifactStore = (*Store)(nil)

// Store writes artifacts into fixed output directories, creating them on
// demand. File names are timestamp-based with a collision counter.
type Store struct {
	reportDir string
	logDir    string
	mediaDir  string
	clock     domain.Clock
}

// New creates a Store for the configured directories.
func New(dirs domain.DirsConfig, clock domain.Clock) *Store {
	return &Store{
		reportDir: dirs.Reports,
		logDir:    dirs.Logs,
		mediaDir:  dirs.Media,
		clock:     clock,
	}
}

// WriteReport writes a device report as YAML and returns its path.
func (s *Store) WriteReport(report *domain.DeviceReport) (string, error) {
	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	name := domain.ArtifactName("report", report.Serial, s.clock.Now(), "yaml")
	return s.writeFile(s.reportDir, name, data)
}

// WriteMedia writes captured bytes under the media dir and returns the path.
func (s *Store) WriteMedia(kind, serial, ext string, data []byte) (string, error) {
	name := domain.ArtifactName(kind, serial, s.clock.Now(), ext)
	return s.writeFile(s.mediaDir, name, data)
}

// MediaPath reserves a unique path under the media dir for a file produced
// externally (adb pull writes it) and returns the path.
func (s *Store) MediaPath(kind, serial, ext string) (string, error) {
	if err := s.ensureDir(s.mediaDir); err != nil {
		return "", err
	}
	name := domain.ArtifactName(kind, serial, s.clock.Now(), ext)
	return uniquePath(filepath.Join(s.mediaDir, name)), nil
}

// WriteLogDump writes a logcat dump under the logs dir and returns the path.
func (s *Store) WriteLogDump(serial string, data []byte) (string, error) {
	name := domain.ArtifactName("logcat", serial, s.clock.Now(), "txt")
	return s.writeFile(s.logDir, name, data)
}

func (s *Store) ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrWriteFailed, dir, err)
	}
	return nil
}

func (s *Store) writeFile(dir, name string, data []byte) (string, error) {
	if err := s.ensureDir(dir); err != nil {
		return "", err
	}
	path := uniquePath(filepath.Join(dir, name))
	if err := os.WriteFile(path, data, 0o640); err != nil { //nolint:gosec // artifacts readable by owner and group
		return "", fmt.Errorf("%w: %s: %v", domain.ErrWriteFailed, path, err)
	}
	return path, nil
}

// uniquePath appends "-N" before the extension until the path is unused.
func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d%s", base, n, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
