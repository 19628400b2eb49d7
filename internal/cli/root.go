// Package cli provides the command-line interface for the workbench.
package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/openclaw/workbench/internal/app"
	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupDevice = "device"
	groupMedia  = "media"
	groupApps   = "apps"
	groupBoot   = "boot"
)

// rootOptions holds the persistent flag values shared by all subcommands.
type rootOptions struct {
	serial string
	dryRun bool
}

// session resolves the effective session from config and flags.
func (o *rootOptions) session(c *app.Container) domain.Session {
	return c.Session(o.serial, o.dryRun)
}

// sessionWithDevice resolves the session, falling back to the first usable
// attached device when neither the flag nor the config names a serial.
func sessionWithDevice(cmd *cobra.Command, c *app.Container, opts *rootOptions) (domain.Session, error) {
	s := opts.session(c)
	if s.Serial != "" {
		return s, nil
	}
	out, err := c.PickDeviceUseCase().Execute(cmd.Context())
	if err != nil {
		return s, err
	}
	if len(out.Serials) == 0 {
		return s, domain.ErrNoDevices
	}
	s.Serial = out.Serials[0]
	return s, nil
}

// launchConsoleFunc is a function variable for launching the interactive
// console, allowing it to be mocked in tests.
var launchConsoleFunc = launchConsole

// NewRootCommand creates the root command for the workbench.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "workbench",
		Short: "Android device workbench over adb and fastboot",
		Long: `workbench wraps the adb and fastboot command line tools into a
single console for everyday device work: device reports, logcat,
screenshots and recordings, app installs, and bootloader reboots.

Run without a subcommand to start the interactive console.
Destructive fastboot operations (flash, erase, format, unlock, oem)
are not exposed.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchConsoleFunc(c, opts, version)
		},
	}

	root.PersistentFlags().StringVarP(&opts.serial, "serial", "s", "", "Target device serial (overrides config)")
	root.PersistentFlags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Print commands instead of running them")

	root.AddGroup(
		&cobra.Group{ID: groupDevice, Title: "Device Commands:"},
		&cobra.Group{ID: groupMedia, Title: "Media Commands:"},
		&cobra.Group{ID: groupApps, Title: "App Commands:"},
		&cobra.Group{ID: groupBoot, Title: "Boot Commands:"},
	)

	devicesCmd := newDevicesCommand(c, opts)
	devicesCmd.GroupID = groupDevice

	summaryCmd := newSummaryCommand(c, opts)
	summaryCmd.GroupID = groupDevice

	reportCmd := newReportCommand(c, opts)
	reportCmd.GroupID = groupDevice

	foregroundCmd := newForegroundCommand(c, opts)
	foregroundCmd.GroupID = groupDevice

	logcatCmd := newLogcatCommand(c, opts)
	logcatCmd.GroupID = groupDevice

	screenshotCmd := newScreenshotCommand(c, opts)
	screenshotCmd.GroupID = groupMedia

	recordCmd := newRecordCommand(c, opts)
	recordCmd.GroupID = groupMedia

	installCmd := newInstallCommand(c, opts)
	installCmd.GroupID = groupApps

	clearDataCmd := newClearDataCommand(c, opts)
	clearDataCmd.GroupID = groupApps

	openCmd := newOpenCommand(c, opts)
	openCmd.GroupID = groupApps

	rebootBootloaderCmd := newRebootBootloaderCommand(c, opts)
	rebootBootloaderCmd.GroupID = groupBoot

	fastbootCmd := newFastbootCommand(c, opts)
	fastbootCmd.GroupID = groupBoot

	root.AddCommand(
		devicesCmd,
		summaryCmd,
		reportCmd,
		foregroundCmd,
		logcatCmd,
		screenshotCmd,
		recordCmd,
		installCmd,
		clearDataCmd,
		openCmd,
		rebootBootloaderCmd,
		fastbootCmd,
	)

	return root
}

// launchConsole starts the interactive menu console.
func launchConsole(c *app.Container, opts *rootOptions, version string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("%w: the console needs a terminal; use a subcommand instead", domain.ErrNotInteractive)
	}
	model := tui.New(c, opts.session(c), version)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// printDryRun prints the commands a dry run would have executed.
func printDryRun(w io.Writer, invocation string) {
	_, _ = color.New(color.FgCyan).Fprintf(w, "dry-run: %s\n", invocation)
}

// printWarning prints a non-fatal warning from a device command.
func printWarning(w io.Writer, warning string) {
	if warning == "" {
		return
	}
	_, _ = color.New(color.FgYellow).Fprintf(w, "warning: %s\n", warning)
}
