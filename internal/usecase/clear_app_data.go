package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/adb"
)

// ClearAppDataInput contains the parameters for clearing app data.
type ClearAppDataInput struct {
	Session domain.Session
	Package string
}

// ClearAppDataOutput contains the pm clear result.
type ClearAppDataOutput struct {
	Output     string
	Invocation string
	Warning    string
	DryRun     bool
}

// ClearAppData is the use case for `pm clear`.
type ClearAppData struct {
	exec domain.CommandExecutor
}

// NewClearAppData creates a new ClearAppData use case.
func NewClearAppData(exec domain.CommandExecutor) *ClearAppData {
	return &ClearAppData{exec: exec}
}

// Execute clears the package's data.
func (uc *ClearAppData) Execute(ctx context.Context, in ClearAppDataInput) (*ClearAppDataOutput, error) {
	if err := requireSerial(in.Session); err != nil {
		return nil, err
	}
	cmd, err := adb.Builder{Serial: in.Session.Serial}.ClearAppData(in.Package)
	if err != nil {
		return nil, err
	}

	if in.Session.DryRun {
		return &ClearAppDataOutput{DryRun: true, Invocation: cmd.String()}, nil
	}

	res, err := uc.exec.Execute(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("run pm clear: %w", err)
	}
	return &ClearAppDataOutput{
		Output:  strings.TrimSpace(res.CombinedOutput()),
		Warning: warning(res),
	}, nil
}
