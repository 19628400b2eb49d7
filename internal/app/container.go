// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/config"
	"github.com/openclaw/workbench/internal/infra/executor"
	"github.com/openclaw/workbench/internal/infra/logging"
	"github.com/openclaw/workbench/internal/infra/store"
	"github.com/openclaw/workbench/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor domain.CommandExecutor
	Store    domain.ArtifactStore
	Clock    domain.Clock
	Logger   domain.Logger

	// Configuration merged from the config file and defaults
	Config *domain.Config
}

// New creates a new Container, loading the configuration from the global
// config directory (file over defaults).
func New() (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}
	return newFromConfig(cfg), nil
}

// NewWithConfigDir creates a new Container reading the configuration from
// the given directory instead of the global one.
func NewWithConfigDir(dir string) (*Container, error) {
	cfg, err := config.NewLoaderWithDir(dir).Load()
	if err != nil {
		return nil, err
	}
	return newFromConfig(cfg), nil
}

func newFromConfig(cfg *domain.Config) *Container {
	clock := domain.RealClock{}
	logger := logging.New(cfg.Dirs.Logs, logging.ParseLevel(cfg.Log.Level))
	return &Container{
		Executor: executor.NewClient(logger),
		Store:    store.New(cfg.Dirs, clock),
		Clock:    clock,
		Logger:   logger,
		Config:   cfg,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, exec domain.CommandExecutor, st domain.ArtifactStore, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Executor: exec,
		Store:    st,
		Clock:    clock,
		Logger:   logger,
		Config:   cfg,
	}
}

// Session returns the initial session state from the configuration,
// optionally overridden by command line flags.
func (c *Container) Session(serialFlag string, dryRunFlag bool) domain.Session {
	s := domain.Session{Serial: c.Config.Serial, DryRun: c.Config.DryRun}
	if serialFlag != "" {
		s.Serial = serialFlag
	}
	if dryRunFlag {
		s.DryRun = true
	}
	return s
}

// UseCase factory methods

// StatusUseCase returns a new Status use case.
func (c *Container) StatusUseCase() *usecase.Status {
	return usecase.NewStatus(c.Executor)
}

// PickDeviceUseCase returns a new PickDevice use case.
func (c *Container) PickDeviceUseCase() *usecase.PickDevice {
	return usecase.NewPickDevice(c.Executor)
}

// DeviceSummaryUseCase returns a new DeviceSummary use case.
func (c *Container) DeviceSummaryUseCase() *usecase.DeviceSummary {
	return usecase.NewDeviceSummary(c.Executor)
}

// WriteReportUseCase returns a new WriteReport use case.
func (c *Container) WriteReportUseCase() *usecase.WriteReport {
	return usecase.NewWriteReport(c.Executor, c.Store, c.Clock)
}

// ForegroundAppUseCase returns a new ForegroundApp use case.
func (c *Container) ForegroundAppUseCase() *usecase.ForegroundApp {
	return usecase.NewForegroundApp(c.Executor)
}

// LogcatUseCase returns a new Logcat use case for the captured variants.
func (c *Container) LogcatUseCase() *usecase.Logcat {
	return usecase.NewLogcat(c.Executor, c.Store)
}

// LogcatFollowUseCase returns a new LogcatFollow use case.
func (c *Container) LogcatFollowUseCase() *usecase.LogcatFollow {
	return usecase.NewLogcatFollow(c.Executor)
}

// ScreenshotUseCase returns a new Screenshot use case.
func (c *Container) ScreenshotUseCase() *usecase.Screenshot {
	return usecase.NewScreenshot(c.Executor, c.Store)
}

// ScreenRecordUseCase returns a new ScreenRecord use case.
func (c *Container) ScreenRecordUseCase() *usecase.ScreenRecord {
	return usecase.NewScreenRecord(c.Executor, c.Store, c.Clock, c.Config.Record.DurationSeconds)
}

// InstallAPKUseCase returns a new InstallAPK use case.
func (c *Container) InstallAPKUseCase() *usecase.InstallAPK {
	return usecase.NewInstallAPK(c.Executor)
}

// ClearAppDataUseCase returns a new ClearAppData use case.
func (c *Container) ClearAppDataUseCase() *usecase.ClearAppData {
	return usecase.NewClearAppData(c.Executor)
}

// OpenURLUseCase returns a new OpenURL use case.
func (c *Container) OpenURLUseCase() *usecase.OpenURL {
	return usecase.NewOpenURL(c.Executor)
}

// RebootBootloaderUseCase returns a new RebootBootloader use case.
func (c *Container) RebootBootloaderUseCase() *usecase.RebootBootloader {
	return usecase.NewRebootBootloader(c.Executor)
}

// FastbootGetvarUseCase returns a new FastbootGetvar use case.
func (c *Container) FastbootGetvarUseCase() *usecase.FastbootGetvar {
	return usecase.NewFastbootGetvar(c.Executor)
}

// FastbootRebootUseCase returns a new FastbootReboot use case.
func (c *Container) FastbootRebootUseCase() *usecase.FastbootReboot {
	return usecase.NewFastbootReboot(c.Executor)
}
