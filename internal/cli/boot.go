package cli

import (
	"fmt"
	"strings"

	"github.com/openclaw/workbench/internal/app"
	"github.com/openclaw/workbench/internal/infra/fastboot"
	"github.com/openclaw/workbench/internal/usecase"
	"github.com/spf13/cobra"
)

func newRebootBootloaderCommand(c *app.Container, opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reboot-bootloader",
		Short: "Reboot the selected device into the bootloader (adb)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes && !confirm(cmd, "Reboot into the bootloader?") {
				return nil
			}
			session, err := sessionWithDevice(cmd, c, opts)
			if err != nil {
				return err
			}
			out, err := c.RebootBootloaderUseCase().Execute(cmd.Context(), usecase.RebootBootloaderInput{
				Session: session,
			})
			if err != nil {
				return err
			}
			if out.DryRun {
				printDryRun(cmd.OutOrStdout(), out.Invocation)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Rebooting into bootloader.")
			printWarning(cmd.ErrOrStderr(), out.Warning)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")

	return cmd
}

func newFastbootCommand(c *app.Container, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fastboot",
		Short: "Safe fastboot operations (getvar, reboot)",
		Long: `Fastboot operations for devices in bootloader mode. Destructive
subcommands (flash, erase, format, unlock, oem) are not exposed.`,
	}

	cmd.AddCommand(
		newFastbootGetvarCommand(c, opts),
		newFastbootRebootCommand(c, opts),
	)

	return cmd
}

func newFastbootGetvarCommand(c *app.Container, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "getvar-all",
		Short: "Dump all bootloader variables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.FastbootGetvarUseCase().Execute(cmd.Context(), usecase.FastbootGetvarInput{
				Session: opts.session(c),
			})
			if err != nil {
				return err
			}
			if out.DryRun {
				printDryRun(cmd.OutOrStdout(), out.Invocation)
				return nil
			}
			if out.Text != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			}
			printWarning(cmd.ErrOrStderr(), out.Warning)
			return nil
		},
	}
}

func newFastbootRebootCommand(c *app.Container, opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reboot [system|bootloader|recovery]",
		Short: "Reboot a fastboot-mode device",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := fastboot.RebootSystem
			if len(args) == 1 && args[0] != "system" {
				target = args[0]
			}
			if !yes && !confirm(cmd, "Reboot the device?") {
				return nil
			}
			out, err := c.FastbootRebootUseCase().Execute(cmd.Context(), usecase.FastbootRebootInput{
				Session: opts.session(c),
				Target:  target,
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

// confirm asks a yes/no question on the command's streams.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	var response string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "\nAborted.")
		return false
	}
	if strings.ToLower(response) != "y" {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return false
	}
	return true
}
