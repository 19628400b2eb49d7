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

func newDevicesCommand(c *app.Container, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List devices visible to adb and fastboot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.StatusUseCase().Execute(cmd.Context(), usecase.StatusInput{
				Session: opts.session(c),
			})
			if err != nil {
				return err
			}
			if out.DryRun {
				printDryRun(cmd.OutOrStdout(), out.Invocation)
				return nil
			}

			w := cmd.OutOrStdout()
			if len(out.ADB) == 0 && len(out.Fastboot) == 0 {
				fmt.Fprintln(w, "No devices attached.")
				printWarning(cmd.ErrOrStderr(), out.Warning)
				return nil
			}
			printDeviceTable(w, "adb", out.ADB)
			if len(out.Fastboot) > 0 {
				printDeviceTable(w, "fastboot", out.Fastboot)
			}
			printWarning(cmd.ErrOrStderr(), out.Warning)
			return nil
		},
	}
}

// printDeviceTable prints one section of the device list. The state column
// is colored so an unauthorized device stands out. Color escapes confuse
// tabwriter's width accounting, so the columns are padded by hand.
func printDeviceTable(w io.Writer, mode string, devices []domain.Device) {
	fmt.Fprintf(w, "%s:\n", mode)
	for _, d := range devices {
		state := stateColor(d.State).Sprint(fmt.Sprintf("%-14s", string(d.State)))
		fmt.Fprintf(w, "  %-24s %s %s\n", d.Serial, state, d.Description)
	}
}

func stateColor(state domain.DeviceState) *color.Color {
	switch state {
	case domain.StateDevice:
		return color.New(color.FgGreen)
	case domain.StateUnauthorized, domain.StateOffline:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}
