package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/openclaw/workbench/internal/app"
	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/usecase"
	"github.com/spf13/cobra"
)

func newSummaryCommand(c *app.Container, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show model, build, uptime and battery for the selected device",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := sessionWithDevice(cmd, c, opts)
			if err != nil {
				return err
			}
			out, err := c.DeviceSummaryUseCase().Execute(cmd.Context(), usecase.DeviceSummaryInput{
				Session: session,
			})
			if err != nil {
				return err
			}
			if out.DryRun {
				printDryRun(cmd.OutOrStdout(), out.Invocation)
				return nil
			}
			printSummary(cmd.OutOrStdout(), out.Summary)
			printWarning(cmd.ErrOrStderr(), out.Warning)
			return nil
		},
	}
}

func printSummary(w io.Writer, s domain.DeviceSummary) {
	label := color.New(color.Bold)
	row := func(name, value string) {
		if value == "" {
			value = "(unknown)"
		}
		fmt.Fprintf(w, "%s %s\n", label.Sprintf("%-16s", name+":"), value)
	}
	row("Serial", s.Serial)
	row("Model", s.Model)
	row("Android", s.Android)
	row("Security patch", s.SecurityPatch)
	row("ABI", s.ABI)
	row("Fingerprint", s.Fingerprint)
	row("Uptime", s.Uptime)
	if s.Battery != "" {
		fmt.Fprintf(w, "%s\n%s\n", label.Sprint("Battery:"), s.Battery)
	}
}

func newReportCommand(c *app.Container, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Write a device report (build and verified-boot state) to a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := sessionWithDevice(cmd, c, opts)
			if err != nil {
				return err
			}
			out, err := c.WriteReportUseCase().Execute(cmd.Context(), usecase.WriteReportInput{
				Session: session,
			})
			if err != nil {
				return err
			}
			if out.DryRun {
				printDryRun(cmd.OutOrStdout(), out.Invocation)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", out.Path)
			return nil
		},
	}
}

func newForegroundCommand(c *app.Container, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "foreground",
		Short: "Show the app currently in the foreground",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := sessionWithDevice(cmd, c, opts)
			if err != nil {
				return err
			}
			out, err := c.ForegroundAppUseCase().Execute(cmd.Context(), usecase.ForegroundAppInput{
				Session: session,
			})
			if err != nil {
				return err
			}
			if out.DryRun {
				printDryRun(cmd.OutOrStdout(), out.Invocation)
				return nil
			}
			if len(out.Lines) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No foreground activity found.")
			}
			for _, line := range out.Lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			printWarning(cmd.ErrOrStderr(), out.Warning)
			return nil
		},
	}
}
