package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/adb"
)

// defaultLogcatLines is the dump size of the plain logcat dump.
const defaultLogcatLines = 200

// LogcatInput contains the parameters for a captured logcat operation.
// Fields are ordered to minimize memory padding.
type LogcatInput struct {
	Session domain.Session
	Op      domain.Operation // one of the captured logcat operations
	Tag     string           // for OpLogcatTag
	Regex   string           // for OpLogcatRegex
	Lines   int              // for OpLogcatDump; 0 means the default
}

// LogcatOutput contains the logcat text or the saved dump path.
type LogcatOutput struct {
	Text       string
	Path       string // set for OpLogcatSave
	Invocation string
	Warning    string
	DryRun     bool
}

// Logcat is the use case for the captured logcat lab operations.
// The live follow is streamed and handled by LogcatFollow.
type Logcat struct {
	exec  domain.CommandExecutor
	store domain.ArtifactStore
}

// NewLogcat creates a new Logcat use case.
func NewLogcat(exec domain.CommandExecutor, store domain.ArtifactStore) *Logcat {
	return &Logcat{exec: exec, store: store}
}

// Execute runs the selected logcat variant.
func (uc *Logcat) Execute(ctx context.Context, in LogcatInput) (*LogcatOutput, error) {
	if err := requireSerial(in.Session); err != nil {
		return nil, err
	}
	b := adb.Builder{Serial: in.Session.Serial}

	// Host-side filters are compiled before anything runs so a bad
	// regex never costs a device round trip.
	var rx *regexp.Regexp
	if in.Op == domain.OpLogcatRegex {
		if in.Regex == "" {
			return nil, fmt.Errorf("%w: regex must not be empty", domain.ErrInvalidArgument)
		}
		var err error
		if rx, err = regexp.Compile(in.Regex); err != nil {
			return nil, fmt.Errorf("%w: bad regex: %v", domain.ErrInvalidArgument, err)
		}
	}

	cmd, err := uc.buildCommand(b, in)
	if err != nil {
		return nil, err
	}

	if in.Session.DryRun {
		return &LogcatOutput{DryRun: true, Invocation: cmd.String()}, nil
	}

	res, err := uc.exec.Execute(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("run logcat: %w", err)
	}

	out := &LogcatOutput{Warning: warning(res)}
	text := string(res.Stdout)

	switch in.Op {
	case domain.OpLogcatDenials:
		text = filterLines(text, func(line string) bool {
			return strings.Contains(strings.ToLower(line), "avc:")
		})
	case domain.OpLogcatRegex:
		text = filterLines(text, rx.MatchString)
	case domain.OpLogcatSave:
		path, writeErr := uc.store.WriteLogDump(in.Session.Serial, res.Stdout)
		if writeErr != nil {
			return nil, writeErr
		}
		out.Path = path
		return out, nil
	}

	out.Text = text
	return out, nil
}

// buildCommand maps an operation to its logcat command.
func (uc *Logcat) buildCommand(b adb.Builder, in LogcatInput) (domain.ExecCommand, error) {
	switch in.Op {
	case domain.OpLogcatDump:
		lines := in.Lines
		if lines <= 0 {
			lines = defaultLogcatLines
		}
		return b.LogcatDump(lines), nil
	case domain.OpLogcatCrashes:
		return b.LogcatCrashes(), nil
	case domain.OpLogcatDenials, domain.OpLogcatRegex, domain.OpLogcatSave:
		return b.LogcatFullDump(), nil
	case domain.OpLogcatTag:
		return b.LogcatTag(in.Tag)
	case domain.OpLogcatClear:
		return b.LogcatClear(), nil
	default:
		return domain.ExecCommand{}, fmt.Errorf("%w: %s is not a captured logcat operation", domain.ErrUnknownOperation, in.Op.Title())
	}
}

// filterLines keeps the lines of s for which keep returns true.
func filterLines(s string, keep func(string) bool) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		if keep(line) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
