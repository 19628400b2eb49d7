package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/adb"
)

// OpenURLInput contains the parameters for launching a URL on the device.
type OpenURLInput struct {
	Session domain.Session
	URL     string
}

// OpenURLOutput contains the am start result.
type OpenURLOutput struct {
	Output     string
	Invocation string
	Warning    string
	DryRun     bool
}

// OpenURL is the use case for launching a VIEW intent.
type OpenURL struct {
	exec domain.CommandExecutor
}

// NewOpenURL creates a new OpenURL use case.
func NewOpenURL(exec domain.CommandExecutor) *OpenURL {
	return &OpenURL{exec: exec}
}

// Execute opens the URL on the device.
func (uc *OpenURL) Execute(ctx context.Context, in OpenURLInput) (*OpenURLOutput, error) {
	if err := requireSerial(in.Session); err != nil {
		return nil, err
	}
	cmd, err := adb.Builder{Serial: in.Session.Serial}.OpenURL(in.URL)
	if err != nil {
		return nil, err
	}

	if in.Session.DryRun {
		return &OpenURLOutput{DryRun: true, Invocation: cmd.String()}, nil
	}

	res, err := uc.exec.Execute(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("run am start: %w", err)
	}
	return &OpenURLOutput{
		Output:  strings.TrimSpace(res.CombinedOutput()),
		Warning: warning(res),
	}, nil
}
