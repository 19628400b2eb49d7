package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/adb"
)

// ForegroundAppInput contains the parameters for the foreground lookup.
type ForegroundAppInput struct {
	Session domain.Session
}

// ForegroundAppOutput contains the matched dumpsys lines.
type ForegroundAppOutput struct {
	Lines      []string
	Invocation string
	Warning    string
	DryRun     bool
}

// ForegroundApp is the use case for finding the foreground app/activity.
type ForegroundApp struct {
	exec domain.CommandExecutor
}

// NewForegroundApp creates a new ForegroundApp use case.
func NewForegroundApp(exec domain.CommandExecutor) *ForegroundApp {
	return &ForegroundApp{exec: exec}
}

// Execute greps dumpsys activity for the resumed activity, falling back to
// window focus when the wording differs across Android versions.
func (uc *ForegroundApp) Execute(ctx context.Context, in ForegroundAppInput) (*ForegroundAppOutput, error) {
	if err := requireSerial(in.Session); err != nil {
		return nil, err
	}
	b := adb.Builder{Serial: in.Session.Serial}
	activityCmd := b.Dumpsys("activity", "activities")

	if in.Session.DryRun {
		return &ForegroundAppOutput{DryRun: true, Invocation: activityCmd.String()}, nil
	}

	res, err := uc.exec.Execute(ctx, activityCmd)
	if err != nil {
		return nil, fmt.Errorf("run dumpsys activity: %w", err)
	}
	hits := matchLines(string(res.Stdout), "mResumedActivity", "topResumedActivity")

	if len(hits) == 0 {
		winRes, winErr := uc.exec.Execute(ctx, b.Dumpsys("window"))
		if winErr != nil {
			return nil, fmt.Errorf("run dumpsys window: %w", winErr)
		}
		hits = matchLines(string(winRes.Stdout), "mCurrentFocus", "mFocusedApp")
	}

	return &ForegroundAppOutput{Lines: hits, Warning: warning(res)}, nil
}

// matchLines returns trimmed lines containing any of the needles.
func matchLines(s string, needles ...string) []string {
	var hits []string
	for _, line := range strings.Split(s, "\n") {
		for _, needle := range needles {
			if strings.Contains(line, needle) {
				hits = append(hits, strings.TrimSpace(line))
				break
			}
		}
	}
	return hits
}
