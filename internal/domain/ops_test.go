package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllOperations_HaveInfo(t *testing.T) {
	for _, op := range AllOperations() {
		info := op.Info()
		assert.NotEmpty(t, info.Title, "operation %d has no title", op)
		if info.Input != InputNone {
			assert.NotEmpty(t, info.Prompt, "operation %q needs input but has no prompt", info.Title)
		}
	}
}

func TestMenus_AreDisjoint(t *testing.T) {
	seen := make(map[Operation]bool)
	for _, op := range AllOperations() {
		assert.False(t, seen[op], "operation %q appears twice", op.Title())
		seen[op] = true
	}
}

func TestIsBlockedFastbootSubcommand(t *testing.T) {
	for _, sub := range []string{"flash", "erase", "format", "unlock", "oem"} {
		assert.True(t, IsBlockedFastbootSubcommand(sub), sub)
	}
	for _, sub := range []string{"reboot", "getvar", "devices", ""} {
		assert.False(t, IsBlockedFastbootSubcommand(sub), sub)
	}
}
