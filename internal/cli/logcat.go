package cli

import (
	"fmt"

	"github.com/openclaw/workbench/internal/app"
	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/usecase"
	"github.com/spf13/cobra"
)

func newLogcatCommand(c *app.Container, opts *rootOptions) *cobra.Command {
	var (
		follow  bool
		crashes bool
		denials bool
		save    bool
		clear   bool
		tag     string
		regex   string
		lines   int
	)

	cmd := &cobra.Command{
		Use:   "logcat",
		Short: "Dump, follow, filter, save or clear the device log",
		Long: `Without flags, logcat dumps the most recent log entries.
--follow streams the log live until interrupted. The filter flags
select a single variant; at most one may be given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := sessionWithDevice(cmd, c, opts)
			if err != nil {
				return err
			}

			op := domain.OpLogcatDump
			selected := 0
			for _, pick := range []struct {
				on bool
				op domain.Operation
			}{
				{follow, domain.OpLogcatFollow},
				{crashes, domain.OpLogcatCrashes},
				{denials, domain.OpLogcatDenials},
				{save, domain.OpLogcatSave},
				{clear, domain.OpLogcatClear},
				{tag != "", domain.OpLogcatTag},
				{regex != "", domain.OpLogcatRegex},
			} {
				if pick.on {
					op = pick.op
					selected++
				}
			}
			if selected > 1 {
				return fmt.Errorf("%w: at most one logcat variant may be selected", domain.ErrInvalidArgument)
			}

			if op == domain.OpLogcatFollow {
				out, err := c.LogcatFollowUseCase().Execute(cmd.Context(), usecase.LogcatFollowInput{
					Session: session,
				})
				if err != nil {
					return err
				}
				if out.DryRun {
					printDryRun(cmd.OutOrStdout(), out.Invocation)
				}
				return nil
			}

			out, err := c.LogcatUseCase().Execute(cmd.Context(), usecase.LogcatInput{
				Session: session,
				Op:      op,
				Tag:     tag,
				Regex:   regex,
				Lines:   lines,
			})
			if err != nil {
				return err
			}
			if out.DryRun {
				printDryRun(cmd.OutOrStdout(), out.Invocation)
				return nil
			}
			switch {
			case out.Path != "":
				fmt.Fprintf(cmd.OutOrStdout(), "Log saved to %s\n", out.Path)
			case op == domain.OpLogcatClear:
				fmt.Fprintln(cmd.OutOrStdout(), "Log buffers cleared.")
			case out.Text == "":
				fmt.Fprintln(cmd.OutOrStdout(), "(no matching log entries)")
			default:
				fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			}
			printWarning(cmd.ErrOrStderr(), out.Warning)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Stream the log live until interrupted")
	cmd.Flags().BoolVar(&crashes, "crashes", false, "Show AndroidRuntime crashes only")
	cmd.Flags().BoolVar(&denials, "denials", false, "Show SELinux denials only")
	cmd.Flags().BoolVar(&save, "save", false, "Save a full dump to the log directory")
	cmd.Flags().BoolVar(&clear, "clear", false, "Clear all log buffers")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Show entries for a single tag")
	cmd.Flags().StringVarP(&regex, "regex", "e", "", "Filter the dump by a regular expression")
	cmd.Flags().IntVar(&lines, "lines", 0, "Number of lines for the plain dump")

	return cmd
}
