package domain

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayout is used in artifact file names.
const timestampLayout = "20060102-150405"

// ArtifactName builds a deterministic artifact file name:
// "<kind>-<serial>-<timestamp>.<ext>". The serial segment is omitted when
// no serial is set.
func ArtifactName(kind, serial string, t time.Time, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if serial == "" {
		return fmt.Sprintf("%s-%s.%s", kind, t.Format(timestampLayout), ext)
	}
	return fmt.Sprintf("%s-%s-%s.%s", kind, serial, t.Format(timestampLayout), ext)
}

// DeviceRecordingPath returns the on-device temp path for a screen recording.
func DeviceRecordingPath(t time.Time) string {
	return fmt.Sprintf("/sdcard/workbench-record-%s.mp4", t.Format(timestampLayout))
}
