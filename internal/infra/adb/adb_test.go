package adb

import (
	"testing"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SerialBaseArgs(t *testing.T) {
	b := Builder{Serial: "R5CT102WXYZ"}
	cmd := b.Getprop("ro.product.model")
	assert.Equal(t, []string{"adb", "-s", "R5CT102WXYZ", "shell", "getprop", "ro.product.model"}, cmd.Argv())

	noSerial := Builder{}
	cmd = noSerial.Getprop("ro.product.model")
	assert.Equal(t, []string{"adb", "shell", "getprop", "ro.product.model"}, cmd.Argv())
}

func TestBuilder_Install(t *testing.T) {
	t.Run("produces install -r argv", func(t *testing.T) {
		cmd, err := Builder{}.Install("/tmp/app.apk")
		require.NoError(t, err)
		assert.Equal(t, []string{"adb", "install", "-r", "/tmp/app.apk"}, cmd.Argv())
	})

	t.Run("empty path is an invalid argument", func(t *testing.T) {
		_, err := Builder{}.Install("")
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestBuilder_Logcat(t *testing.T) {
	b := Builder{}

	assert.Equal(t, []string{"adb", "logcat", "-b", "all", "-d", "-t", "200", "-v", "time"},
		b.LogcatDump(200).Argv())

	follow := b.LogcatFollow()
	assert.Equal(t, domain.ModeStreamed, follow.Mode)
	assert.Equal(t, []string{"adb", "logcat", "-b", "all", "-v", "time"}, follow.Argv())

	assert.Equal(t, []string{"adb", "logcat", "-v", "time", "AndroidRuntime:E", "*:S"},
		b.LogcatCrashes().Argv())

	tag, err := b.LogcatTag("ActivityManager")
	require.NoError(t, err)
	assert.Equal(t, []string{"adb", "logcat", "-b", "all", "-d", "-v", "time", "ActivityManager:V", "*:S"},
		tag.Argv())

	_, err = b.LogcatTag("")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	assert.Equal(t, []string{"adb", "logcat", "-b", "all", "-c"}, b.LogcatClear().Argv())
}

func TestBuilder_MediaCommands(t *testing.T) {
	b := Builder{Serial: "emulator-5554"}

	assert.Equal(t, []string{"adb", "-s", "emulator-5554", "exec-out", "screencap", "-p"},
		b.Screenshot().Argv())

	assert.Equal(t,
		[]string{"adb", "-s", "emulator-5554", "shell", "screenrecord", "--time-limit", "15", "/sdcard/rec.mp4"},
		b.ScreenRecord(15, "/sdcard/rec.mp4").Argv())

	pull, err := b.Pull("/sdcard/rec.mp4", "/tmp/rec.mp4")
	require.NoError(t, err)
	assert.Equal(t, []string{"adb", "-s", "emulator-5554", "pull", "/sdcard/rec.mp4", "/tmp/rec.mp4"}, pull.Argv())

	_, err = b.Pull("", "/tmp/rec.mp4")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestBuilder_AppCommands(t *testing.T) {
	b := Builder{}

	clearCmd, err := b.ClearAppData("com.example.app")
	require.NoError(t, err)
	assert.Equal(t, []string{"adb", "shell", "pm", "clear", "com.example.app"}, clearCmd.Argv())

	_, err = b.ClearAppData("")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	openCmd, err := b.OpenURL("https://example.com")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"adb", "shell", "am", "start", "-a", "android.intent.action.VIEW", "-d", "https://example.com"},
		openCmd.Argv())

	_, err = b.OpenURL("")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestBuilder_Devices_IgnoresSerial(t *testing.T) {
	cmd := Builder{Serial: "x"}.Devices()
	assert.Equal(t, []string{"adb", "devices", "-l"}, cmd.Argv())
}
