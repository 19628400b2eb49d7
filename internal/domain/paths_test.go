package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArtifactName(t *testing.T) {
	at := time.Date(2026, 8, 28, 14, 30, 5, 0, time.UTC)

	assert.Equal(t, "screenshot-R5CT102WXYZ-20260828-143005.png",
		ArtifactName("screenshot", "R5CT102WXYZ", at, "png"))
	assert.Equal(t, "report-20260828-143005.yaml",
		ArtifactName("report", "", at, "yaml"))
	// Leading dot on the extension is tolerated.
	assert.Equal(t, "logcat-x-20260828-143005.txt",
		ArtifactName("logcat", "x", at, ".txt"))
}

func TestDeviceRecordingPath(t *testing.T) {
	at := time.Date(2026, 8, 28, 14, 30, 5, 0, time.UTC)
	assert.Equal(t, "/sdcard/workbench-record-20260828-143005.mp4", DeviceRecordingPath(at))
}

func TestClampRecordDuration(t *testing.T) {
	assert.Equal(t, RecordDurationDefault, ClampRecordDuration(0))
	assert.Equal(t, RecordDurationDefault, ClampRecordDuration(-3))
	assert.Equal(t, 30, ClampRecordDuration(30))
	assert.Equal(t, RecordDurationMax, ClampRecordDuration(500))
}
