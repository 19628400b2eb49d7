package domain

// BlockedFastbootSubcommands are destructive fastboot subcommands that may
// never be issued by the workbench. This is a hard-coded safety invariant,
// not user-configurable.
var BlockedFastbootSubcommands = []string{
	"flash",
	"erase",
	"format",
	"unlock",
	"oem",
}

// IsBlockedFastbootSubcommand reports whether the given fastboot
// subcommand token is on the blocklist.
func IsBlockedFastbootSubcommand(sub string) bool {
	for _, b := range BlockedFastbootSubcommands {
		if sub == b {
			return true
		}
	}
	return false
}
