package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/fastboot"
)

// FastbootGetvarInput contains the parameters for getvar all.
type FastbootGetvarInput struct {
	Session domain.Session
}

// FastbootGetvarOutput contains the variable dump.
type FastbootGetvarOutput struct {
	Text       string
	Invocation string
	Warning    string
	DryRun     bool
}

// FastbootGetvar is the use case for `fastboot getvar all`.
type FastbootGetvar struct {
	exec domain.CommandExecutor
}

// NewFastbootGetvar creates a new FastbootGetvar use case.
func NewFastbootGetvar(exec domain.CommandExecutor) *FastbootGetvar {
	return &FastbootGetvar{exec: exec}
}

// Execute queries all bootloader variables. fastboot writes getvar output
// to stderr, so stdout and stderr are combined.
func (uc *FastbootGetvar) Execute(ctx context.Context, in FastbootGetvarInput) (*FastbootGetvarOutput, error) {
	cmd := fastboot.Builder{Serial: in.Session.Serial}.GetvarAll()

	if in.Session.DryRun {
		return &FastbootGetvarOutput{DryRun: true, Invocation: cmd.String()}, nil
	}

	res, err := uc.exec.Execute(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("run fastboot getvar: %w", err)
	}
	return &FastbootGetvarOutput{
		Text:    strings.TrimSpace(res.CombinedOutput()),
		Warning: warning(res),
	}, nil
}
