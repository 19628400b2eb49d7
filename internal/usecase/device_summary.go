package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/adb"
)

// DeviceSummaryInput contains the parameters for the summary operation.
type DeviceSummaryInput struct {
	Session domain.Session
}

// DeviceSummaryOutput contains the collected summary.
type DeviceSummaryOutput struct {
	Summary    domain.DeviceSummary
	Invocation string
	Warning    string
	DryRun     bool
}

// DeviceSummary is the use case for the props/battery/uptime summary.
type DeviceSummary struct {
	exec domain.CommandExecutor
}

// NewDeviceSummary creates a new DeviceSummary use case.
func NewDeviceSummary(exec domain.CommandExecutor) *DeviceSummary {
	return &DeviceSummary{exec: exec}
}

// batteryLineLimit keeps the dumpsys battery section readable.
const batteryLineLimit = 40

// Execute collects the device summary.
func (uc *DeviceSummary) Execute(ctx context.Context, in DeviceSummaryInput) (*DeviceSummaryOutput, error) {
	if err := requireSerial(in.Session); err != nil {
		return nil, err
	}
	b := adb.Builder{Serial: in.Session.Serial}

	if in.Session.DryRun {
		return &DeviceSummaryOutput{
			DryRun:     true,
			Invocation: b.Getprop("ro.product.model").String(),
		}, nil
	}

	summary := domain.DeviceSummary{Serial: in.Session.Serial}
	var warn string

	getprop := func(key string) string {
		res, err := uc.exec.Execute(ctx, b.Getprop(key))
		if err != nil || !res.Ok() {
			return ""
		}
		return strings.TrimSpace(string(res.Stdout))
	}

	summary.Model = getprop("ro.product.model")
	summary.Android = getprop("ro.build.version.release")
	summary.SecurityPatch = getprop("ro.build.version.security_patch")
	summary.ABI = getprop("ro.product.cpu.abi")
	summary.Fingerprint = getprop("ro.build.fingerprint")

	if res, err := uc.exec.Execute(ctx, b.Shell("uptime")); err == nil {
		summary.Uptime = strings.TrimSpace(string(res.Stdout))
		warn = warning(res)
	} else {
		return nil, fmt.Errorf("read uptime: %w", err)
	}

	if res, err := uc.exec.Execute(ctx, b.Dumpsys("battery")); err == nil {
		summary.Battery = truncateLines(strings.TrimSpace(string(res.Stdout)), batteryLineLimit)
		if warn == "" {
			warn = warning(res)
		}
	} else {
		return nil, fmt.Errorf("read battery state: %w", err)
	}

	return &DeviceSummaryOutput{Summary: summary, Warning: warn}, nil
}

// truncateLines keeps the first n lines of s.
func truncateLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}
