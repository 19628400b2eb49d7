package tui

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/fastboot"
	"github.com/openclaw/workbench/internal/usecase"
)

// loadDevices returns a command that lists the selectable serials.
func (m *Model) loadDevices() tea.Cmd {
	return func() tea.Msg {
		out, err := m.c.PickDeviceUseCase().Execute(context.Background())
		if err != nil {
			return MsgDevices{Err: err}
		}
		return MsgDevices{Serials: out.Serials}
	}
}

// execFollow hands the terminal to the live logcat child. The console
// resumes when the child exits or is interrupted.
func (m *Model) execFollow() tea.Cmd {
	cmd, err := m.c.LogcatFollowUseCase().Command(m.session)
	if err != nil {
		return func() tea.Msg { return MsgFollowExited{Err: err} }
	}
	child := exec.Command(cmd.Program, cmd.Args...)
	return tea.ExecProcess(child, func(err error) tea.Msg {
		// An interrupt is how the user stops the follow, not a failure.
		var exitErr *exec.ExitError
		if err != nil && errors.As(err, &exitErr) {
			return MsgFollowExited{}
		}
		return MsgFollowExited{Err: err}
	})
}

// runOp returns a command that executes the operation and renders the
// outcome into a result message.
func (m *Model) runOp(op domain.Operation, value string) tea.Cmd {
	session := m.session
	c := m.c
	return func() tea.Msg {
		ctx := context.Background()
		msg := MsgResult{Title: op.Title()}

		switch op {
		case domain.OpStatus:
			out, err := c.StatusUseCase().Execute(ctx, usecase.StatusInput{Session: session})
			if err != nil {
				return MsgResult{Err: err}
			}
			if out.DryRun {
				return dryRunResult(op, out.Invocation)
			}
			msg.Body = formatDevices(out.ADB, out.Fastboot)
			msg.Warning = out.Warning

		case domain.OpDeviceSummary:
			out, err := c.DeviceSummaryUseCase().Execute(ctx, usecase.DeviceSummaryInput{Session: session})
			if err != nil {
				return MsgResult{Err: err}
			}
			if out.DryRun {
				return dryRunResult(op, out.Invocation)
			}
			msg.Body = formatSummary(out.Summary)
			msg.Warning = out.Warning

		case domain.OpWriteReport:
			out, err := c.WriteReportUseCase().Execute(ctx, usecase.WriteReportInput{Session: session})
			if err != nil {
				return MsgResult{Err: err}
			}
			if out.DryRun {
				return dryRunResult(op, out.Invocation)
			}
			msg.Body = "Report written to " + out.Path

		case domain.OpForegroundApp:
			out, err := c.ForegroundAppUseCase().Execute(ctx, usecase.ForegroundAppInput{Session: session})
			if err != nil {
				return MsgResult{Err: err}
			}
			if out.DryRun {
				return dryRunResult(op, out.Invocation)
			}
			if len(out.Lines) == 0 {
				msg.Body = "No foreground activity found."
			} else {
				msg.Body = strings.Join(out.Lines, "\n")
			}
			msg.Warning = out.Warning

		case domain.OpScreenshot:
			out, err := c.ScreenshotUseCase().Execute(ctx, usecase.ScreenshotInput{Session: session})
			if err != nil {
				return MsgResult{Err: err}
			}
			if out.DryRun {
				return dryRunResult(op, out.Invocation)
			}
			if out.Path != "" {
				msg.Body = "Screenshot written to " + out.Path
			}
			msg.Warning = out.Warning

		case domain.OpScreenRecord:
			seconds, err := parseDuration(value)
			if err != nil {
				return MsgResult{Err: err}
			}
			out, ucErr := c.ScreenRecordUseCase().Execute(ctx, usecase.ScreenRecordInput{Session: session, Seconds: seconds})
			if ucErr != nil {
				return MsgResult{Err: ucErr}
			}
			if out.DryRun {
				return dryRunResult(op, out.Invocation)
			}
			if out.Path != "" {
				msg.Body = fmt.Sprintf("Recording (%ds) written to %s", out.Seconds, out.Path)
			}
			msg.Warning = out.Warning

		case domain.OpInstallAPK:
			out, err := c.InstallAPKUseCase().Execute(ctx, usecase.InstallAPKInput{Session: session, Path: value})
			if err != nil {
				return MsgResult{Err: err}
			}
			if out.DryRun {
				return dryRunResult(op, out.Invocation)
			}
			msg.Body = out.Output
			msg.Warning = out.Warning

		case domain.OpClearAppData:
			out, err := c.ClearAppDataUseCase().Execute(ctx, usecase.ClearAppDataInput{Session: session, Package: value})
			if err != nil {
				return MsgResult{Err: err}
			}
			if out.DryRun {
				return dryRunResult(op, out.Invocation)
			}
			msg.Body = out.Output
			msg.Warning = out.Warning

		case domain.OpOpenURL:
			out, err := c.OpenURLUseCase().Execute(ctx, usecase.OpenURLInput{Session: session, URL: value})
			if err != nil {
				return MsgResult{Err: err}
			}
			if out.DryRun {
				return dryRunResult(op, out.Invocation)
			}
			msg.Body = out.Output
			msg.Warning = out.Warning

		case domain.OpRebootBootloader:
			out, err := c.RebootBootloaderUseCase().Execute(ctx, usecase.RebootBootloaderInput{Session: session})
			if err != nil {
				return MsgResult{Err: err}
			}
			if out.DryRun {
				return dryRunResult(op, out.Invocation)
			}
			msg.Body = "Rebooting into bootloader."
			msg.Warning = out.Warning

		case domain.OpFastbootGetvarAll:
			out, err := c.FastbootGetvarUseCase().Execute(ctx, usecase.FastbootGetvarInput{Session: session})
			if err != nil {
				return MsgResult{Err: err}
			}
			if out.DryRun {
				return dryRunResult(op, out.Invocation)
			}
			msg.Body = out.Text
			msg.Warning = out.Warning

		case domain.OpFastbootReboot, domain.OpFastbootRebootBootloader, domain.OpFastbootRebootRecovery:
			out, err := c.FastbootRebootUseCase().Execute(ctx, usecase.FastbootRebootInput{
				Session: session,
				Target:  fastbootTarget(op),
			})
			if err != nil {
				return MsgResult{Err: err}
			}
			if out.DryRun {
				return dryRunResult(op, out.Invocation)
			}
			msg.Body = out.Output
			msg.Warning = out.Warning

		case domain.OpLogcatDump, domain.OpLogcatCrashes, domain.OpLogcatDenials,
			domain.OpLogcatTag, domain.OpLogcatRegex, domain.OpLogcatSave, domain.OpLogcatClear:
			out, err := c.LogcatUseCase().Execute(ctx, usecase.LogcatInput{
				Session: session,
				Op:      op,
				Tag:     tagValue(op, value),
				Regex:   regexValue(op, value),
			})
			if err != nil {
				return MsgResult{Err: err}
			}
			if out.DryRun {
				return dryRunResult(op, out.Invocation)
			}
			switch {
			case out.Path != "":
				msg.Body = "Log saved to " + out.Path
			case op == domain.OpLogcatClear:
				msg.Body = "Log buffers cleared."
			case out.Text == "":
				msg.Body = "(no matching log entries)"
			default:
				msg.Body = out.Text
			}
			msg.Warning = out.Warning

		case domain.OpLogcatFollow:
			// Streamed; only reachable here in dry-run mode.
			out, err := c.LogcatFollowUseCase().Execute(ctx, usecase.LogcatFollowInput{Session: session})
			if err != nil {
				return MsgResult{Err: err}
			}
			return dryRunResult(op, out.Invocation)

		default:
			return MsgResult{Err: fmt.Errorf("%w: %s", domain.ErrUnknownOperation, op.Title())}
		}

		return msg
	}
}

// dryRunResult renders the invocation a dry run would have executed.
func dryRunResult(op domain.Operation, invocation string) MsgResult {
	return MsgResult{
		Title: op.Title() + " (dry-run)",
		Body:  "would run:\n  " + strings.ReplaceAll(invocation, "\n", "\n  "),
	}
}

// fastbootTarget maps the fastboot reboot operations to their targets.
func fastbootTarget(op domain.Operation) string {
	switch op {
	case domain.OpFastbootRebootBootloader:
		return fastboot.RebootBootloader
	case domain.OpFastbootRebootRecovery:
		return fastboot.RebootRecovery
	default:
		return fastboot.RebootSystem
	}
}

func tagValue(op domain.Operation, value string) string {
	if op == domain.OpLogcatTag {
		return value
	}
	return ""
}

func regexValue(op domain.Operation, value string) string {
	if op == domain.OpLogcatRegex {
		return value
	}
	return ""
}

// parseDuration parses the recording duration prompt. Empty means the
// configured default.
func parseDuration(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: duration must be a number of seconds", domain.ErrInvalidArgument)
	}
	return seconds, nil
}

// formatDevices renders both device lists for the result view.
func formatDevices(adbDevices, fastbootDevices []domain.Device) string {
	if len(adbDevices) == 0 && len(fastbootDevices) == 0 {
		return "No devices attached."
	}
	var b strings.Builder
	b.WriteString("adb:\n")
	for _, d := range adbDevices {
		fmt.Fprintf(&b, "  %-24s %-14s %s\n", d.Serial, string(d.State), d.Description)
	}
	if len(fastbootDevices) > 0 {
		b.WriteString("fastboot:\n")
		for _, d := range fastbootDevices {
			fmt.Fprintf(&b, "  %-24s %s\n", d.Serial, string(d.State))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatSummary renders the device summary for the result view.
func formatSummary(s domain.DeviceSummary) string {
	row := func(name, value string) string {
		if value == "" {
			value = "(unknown)"
		}
		return fmt.Sprintf("%-16s %s", name+":", value)
	}
	lines := []string{
		row("Serial", s.Serial),
		row("Model", s.Model),
		row("Android", s.Android),
		row("Security patch", s.SecurityPatch),
		row("ABI", s.ABI),
		row("Fingerprint", s.Fingerprint),
		row("Uptime", s.Uptime),
	}
	if s.Battery != "" {
		lines = append(lines, "Battery:", s.Battery)
	}
	return strings.Join(lines, "\n")
}
