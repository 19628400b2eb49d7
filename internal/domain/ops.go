package domain

// Operation identifies a workbench operation. Operations are a closed
// enumeration so dispatch can be checked exhaustively instead of keyed
// on menu text.
type Operation int

// All workbench operations.
const (
	OpStatus Operation = iota
	OpDeviceSummary
	OpWriteReport
	OpRebootBootloader
	OpLogcatDump
	OpLogcatFollow
	OpLogcatCrashes
	OpLogcatDenials
	OpLogcatTag
	OpLogcatRegex
	OpLogcatSave
	OpLogcatClear
	OpScreenshot
	OpScreenRecord
	OpForegroundApp
	OpInstallAPK
	OpClearAppData
	OpOpenURL
	OpFastbootGetvarAll
	OpFastbootReboot
	OpFastbootRebootBootloader
	OpFastbootRebootRecovery
)

// InputKind describes what extra input an operation needs from the user.
type InputKind int

const (
	InputNone InputKind = iota
	InputPath
	InputPackage
	InputURL
	InputTag
	InputRegex
	InputDuration
)

// OpInfo carries menu metadata for an operation.
// Fields are ordered to minimize memory padding.
type OpInfo struct {
	Title       string
	Prompt      string // prompt shown when Input != InputNone
	Input       InputKind
	NeedsSerial bool // operation requires a selected adb serial
	Confirm     bool // operation asks for confirmation before running
	Streamed    bool // operation inherits the terminal instead of capturing
}

// opInfos is the metadata table. Exhaustiveness is enforced by Info.
var opInfos = map[Operation]OpInfo{
	OpStatus:                   {Title: "Status (adb/fastboot devices)"},
	OpDeviceSummary:            {Title: "Device summary (props/battery/uptime)", NeedsSerial: true},
	OpWriteReport:              {Title: "Write quick report", NeedsSerial: true},
	OpRebootBootloader:         {Title: "Reboot bootloader (adb)", NeedsSerial: true, Confirm: true},
	OpLogcatDump:               {Title: "Dump last 200 lines (all buffers)", NeedsSerial: true},
	OpLogcatFollow:             {Title: "Live follow (all buffers)", NeedsSerial: true, Streamed: true},
	OpLogcatCrashes:            {Title: "Crashes only (AndroidRuntime)", NeedsSerial: true},
	OpLogcatDenials:            {Title: "SELinux denials (avc, host filter)", NeedsSerial: true},
	OpLogcatTag:                {Title: "Filter by tag", Prompt: "Tag (e.g. ActivityManager)", Input: InputTag, NeedsSerial: true},
	OpLogcatRegex:              {Title: "Filter by regex (host regex)", Prompt: "Regex", Input: InputRegex, NeedsSerial: true},
	OpLogcatSave:               {Title: "Save dump to file", NeedsSerial: true},
	OpLogcatClear:              {Title: "Clear logcat buffers", NeedsSerial: true, Confirm: true},
	OpScreenshot:               {Title: "Screenshot (pull to host)", NeedsSerial: true},
	OpScreenRecord:             {Title: "Screenrecord (pull to host)", Prompt: "Duration seconds (max 180)", Input: InputDuration, NeedsSerial: true},
	OpForegroundApp:            {Title: "Foreground app/activity", NeedsSerial: true},
	OpInstallAPK:               {Title: "Install APK", Prompt: "Path to APK (e.g. ~/Downloads/app.apk)", Input: InputPath, NeedsSerial: true},
	OpClearAppData:             {Title: "Clear app data", Prompt: "Package to clear (e.g. com.example.app)", Input: InputPackage, NeedsSerial: true, Confirm: true},
	OpOpenURL:                  {Title: "Open URL on device", Prompt: "URL (https://...)", Input: InputURL, NeedsSerial: true},
	OpFastbootGetvarAll:        {Title: "Fastboot getvar all"},
	OpFastbootReboot:           {Title: "Fastboot reboot", Confirm: true},
	OpFastbootRebootBootloader: {Title: "Fastboot reboot bootloader", Confirm: true},
	OpFastbootRebootRecovery:   {Title: "Fastboot reboot recovery", Confirm: true},
}

// Info returns the menu metadata for an operation.
func (op Operation) Info() OpInfo {
	return opInfos[op]
}

// Title returns the human-readable operation title.
func (op Operation) Title() string {
	return opInfos[op].Title
}

// MainMenu returns the operations shown in the main menu, in order.
func MainMenu() []Operation {
	return []Operation{
		OpStatus,
		OpDeviceSummary,
		OpWriteReport,
		OpForegroundApp,
		OpScreenshot,
		OpScreenRecord,
		OpInstallAPK,
		OpClearAppData,
		OpOpenURL,
		OpRebootBootloader,
		OpFastbootGetvarAll,
		OpFastbootReboot,
		OpFastbootRebootBootloader,
		OpFastbootRebootRecovery,
	}
}

// LogcatMenu returns the operations of the logcat lab submenu, in order.
func LogcatMenu() []Operation {
	return []Operation{
		OpLogcatDump,
		OpLogcatFollow,
		OpLogcatCrashes,
		OpLogcatDenials,
		OpLogcatTag,
		OpLogcatRegex,
		OpLogcatSave,
		OpLogcatClear,
	}
}

// AllOperations returns every operation reachable from any menu.
func AllOperations() []Operation {
	return append(MainMenu(), LogcatMenu()...)
}
