package cli

import (
	"fmt"

	"github.com/openclaw/workbench/internal/app"
	"github.com/openclaw/workbench/internal/usecase"
	"github.com/spf13/cobra"
)

func newInstallCommand(c *app.Container, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "install <apk>",
		Short: "Install an APK, replacing an existing app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionWithDevice(cmd, c, opts)
			if err != nil {
				return err
			}
			out, err := c.InstallAPKUseCase().Execute(cmd.Context(), usecase.InstallAPKInput{
				Session: session,
				Path:    args[0],
			})
			if err != nil {
				return err
			}
			if out.DryRun {
				printDryRun(cmd.OutOrStdout(), out.Invocation)
				return nil
			}
			if out.Output != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out.Output)
			}
			printWarning(cmd.ErrOrStderr(), out.Warning)
			return nil
		},
	}
}

func newClearDataCommand(c *app.Container, opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear-data <package>",
		Short: "Clear an app's data (pm clear)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := args[0]
			if !yes && !confirm(cmd, fmt.Sprintf("Clear all data of %s?", pkg)) {
				return nil
			}

			session, err := sessionWithDevice(cmd, c, opts)
			if err != nil {
				return err
			}
			out, err := c.ClearAppDataUseCase().Execute(cmd.Context(), usecase.ClearAppDataInput{
				Session: session,
				Package: pkg,
			})
			if err != nil {
				return err
			}
			if out.DryRun {
				printDryRun(cmd.OutOrStdout(), out.Invocation)
				return nil
			}
			if out.Output != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out.Output)
			}
			printWarning(cmd.ErrOrStderr(), out.Warning)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")

	return cmd
}

func newOpenCommand(c *app.Container, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "open <url>",
		Short: "Open a URL on the device (VIEW intent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionWithDevice(cmd, c, opts)
			if err != nil {
				return err
			}
			out, err := c.OpenURLUseCase().Execute(cmd.Context(), usecase.OpenURLInput{
				Session: session,
				URL:     args[0],
			})
			if err != nil {
				return err
			}
			if out.DryRun {
				printDryRun(cmd.OutOrStdout(), out.Invocation)
				return nil
			}
			if out.Output != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out.Output)
			}
			printWarning(cmd.ErrOrStderr(), out.Warning)
			return nil
		},
	}
}
