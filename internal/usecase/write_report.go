package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/adb"
)

// WriteReportInput contains the parameters for the report operation.
type WriteReportInput struct {
	Session domain.Session
}

// WriteReportOutput contains the written report and its path.
type WriteReportOutput struct {
	Report     *domain.DeviceReport
	Path       string
	Invocation string
	DryRun     bool
}

// WriteReport is the use case for writing a quick device report.
type WriteReport struct {
	exec  domain.CommandExecutor
	store domain.ArtifactStore
	clock domain.Clock
}

// NewWriteReport creates a new WriteReport use case.
func NewWriteReport(exec domain.CommandExecutor, store domain.ArtifactStore, clock domain.Clock) *WriteReport {
	return &WriteReport{exec: exec, store: store, clock: clock}
}

// Execute collects boot/build properties and writes the report file.
func (uc *WriteReport) Execute(ctx context.Context, in WriteReportInput) (*WriteReportOutput, error) {
	if err := requireSerial(in.Session); err != nil {
		return nil, err
	}
	b := adb.Builder{Serial: in.Session.Serial}

	if in.Session.DryRun {
		return &WriteReportOutput{
			DryRun:     true,
			Invocation: b.Getprop("ro.build.fingerprint").String(),
		}, nil
	}

	getprop := func(key string) (string, error) {
		res, err := uc.exec.Execute(ctx, b.Getprop(key))
		if err != nil {
			return "", fmt.Errorf("getprop %s: %w", key, err)
		}
		return strings.TrimSpace(string(res.Stdout)), nil
	}

	report := &domain.DeviceReport{
		Serial: in.Session.Serial,
		When:   uc.clock.Now(),
	}

	var err error
	if report.Model, err = getprop("ro.product.model"); err != nil {
		return nil, err
	}
	if report.Android, err = getprop("ro.build.version.release"); err != nil {
		return nil, err
	}
	if report.Fingerprint, err = getprop("ro.build.fingerprint"); err != nil {
		return nil, err
	}
	if report.VerifiedBootState, err = getprop("ro.boot.verifiedbootstate"); err != nil {
		return nil, err
	}
	if report.FlashLocked, err = getprop("ro.boot.flash.locked"); err != nil {
		return nil, err
	}
	if report.VBMetaDeviceState, err = getprop("ro.boot.vbmeta.device_state"); err != nil {
		return nil, err
	}

	idRes, err := uc.exec.Execute(ctx, b.Shell("id"))
	if err != nil {
		return nil, fmt.Errorf("read shell id: %w", err)
	}
	report.ShellID = strings.TrimSpace(string(idRes.Stdout))

	path, err := uc.store.WriteReport(report)
	if err != nil {
		return nil, err
	}
	return &WriteReportOutput{Report: report, Path: path}, nil
}
