package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/adb"
)

// InstallAPKInput contains the parameters for installing an APK.
type InstallAPKInput struct {
	Session domain.Session
	Path    string // host path to the APK; "~" is expanded
}

// InstallAPKOutput contains the install result.
type InstallAPKOutput struct {
	Output     string
	Invocation string
	Warning    string
	DryRun     bool
}

// InstallAPK is the use case for installing an APK with -r.
type InstallAPK struct {
	exec domain.CommandExecutor
}

// NewInstallAPK creates a new InstallAPK use case.
func NewInstallAPK(exec domain.CommandExecutor) *InstallAPK {
	return &InstallAPK{exec: exec}
}

// Execute validates the path and installs the APK. No subprocess runs when
// validation fails.
func (uc *InstallAPK) Execute(ctx context.Context, in InstallAPKInput) (*InstallAPKOutput, error) {
	if err := requireSerial(in.Session); err != nil {
		return nil, err
	}

	path := expandHome(in.Path)
	cmd, err := adb.Builder{Serial: in.Session.Serial}.Install(path)
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(path); statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: APK not found: %s", domain.ErrInvalidArgument, path)
		}
		return nil, fmt.Errorf("stat APK: %w", statErr)
	}

	if in.Session.DryRun {
		return &InstallAPKOutput{DryRun: true, Invocation: cmd.String()}, nil
	}

	res, err := uc.exec.Execute(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("run install: %w", err)
	}
	return &InstallAPKOutput{
		Output:  strings.TrimSpace(res.CombinedOutput()),
		Warning: warning(res),
	}, nil
}

// expandHome expands a leading "~" to the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
