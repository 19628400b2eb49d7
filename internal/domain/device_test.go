package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseADBDevices(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []Device
	}{
		{
			name:   "empty output",
			output: "",
			want:   nil,
		},
		{
			name:   "header only",
			output: "List of devices attached\n",
			want:   nil,
		},
		{
			name:   "single device with description",
			output: "List of devices attached\nemulator-5554          device product:sdk_gphone64 model:Pixel_7 transport_id:1\n",
			want: []Device{
				{Serial: "emulator-5554", State: StateDevice, Description: "product:sdk_gphone64 model:Pixel_7 transport_id:1"},
			},
		},
		{
			name:   "unauthorized device",
			output: "List of devices attached\nR5CT102WXYZ\tunauthorized\n",
			want: []Device{
				{Serial: "R5CT102WXYZ", State: StateUnauthorized},
			},
		},
		{
			name:   "daemon preamble and leading blank line",
			output: "\n* daemon not running; starting now at tcp:5037\n* daemon started successfully\nList of devices attached\nR5CT102WXYZ\tdevice\n",
			want: []Device{
				{Serial: "R5CT102WXYZ", State: StateDevice},
			},
		},
		{
			name:   "mixed states and blank lines",
			output: "List of devices attached\n\nR5CT102WXYZ\tdevice\nemulator-5554\toffline\n\n",
			want: []Device{
				{Serial: "R5CT102WXYZ", State: StateDevice},
				{Serial: "emulator-5554", State: StateOffline},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseADBDevices(tt.output))
		})
	}
}

func TestParseFastbootDevices(t *testing.T) {
	out := "1A2B3C4D\tfastboot\n"
	devices := ParseFastbootDevices(out)
	assert.Equal(t, []Device{{Serial: "1A2B3C4D", State: StateFastboot}}, devices)

	assert.Nil(t, ParseFastbootDevices(""))
}

func TestUsableSerials(t *testing.T) {
	devices := []Device{
		{Serial: "a", State: StateDevice},
		{Serial: "b", State: StateOffline},
		{Serial: "c", State: StateDevice},
		{Serial: "d", State: StateUnauthorized},
	}
	assert.Equal(t, []string{"a", "c"}, UsableSerials(devices))
}
