package cli

import (
	"fmt"

	"github.com/openclaw/workbench/internal/app"
	"github.com/openclaw/workbench/internal/usecase"
	"github.com/spf13/cobra"
)

func newScreenshotCommand(c *app.Container, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "screenshot",
		Short: "Capture the screen to the media directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := sessionWithDevice(cmd, c, opts)
			if err != nil {
				return err
			}
			out, err := c.ScreenshotUseCase().Execute(cmd.Context(), usecase.ScreenshotInput{
				Session: session,
			})
			if err != nil {
				return err
			}
			if out.DryRun {
				printDryRun(cmd.OutOrStdout(), out.Invocation)
				return nil
			}
			if out.Path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Screenshot written to %s\n", out.Path)
			}
			printWarning(cmd.ErrOrStderr(), out.Warning)
			return nil
		},
	}
}

func newRecordCommand(c *app.Container, opts *rootOptions) *cobra.Command {
	var seconds int

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record the screen and pull the recording to the media directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := sessionWithDevice(cmd, c, opts)
			if err != nil {
				return err
			}
			out, err := c.ScreenRecordUseCase().Execute(cmd.Context(), usecase.ScreenRecordInput{
				Session: session,
				Seconds: seconds,
			})
			if err != nil {
				return err
			}
			if out.DryRun {
				printDryRun(cmd.OutOrStdout(), out.Invocation)
				return nil
			}
			if out.Path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Recording (%ds) written to %s\n", out.Seconds, out.Path)
			}
			printWarning(cmd.ErrOrStderr(), out.Warning)
			return nil
		},
	}

	cmd.Flags().IntVarP(&seconds, "seconds", "t", 0, "Recording length in seconds (default from config)")

	return cmd
}
