package fastboot

import (
	"testing"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Command_BlocksDestructiveSubcommands(t *testing.T) {
	b := Builder{Serial: "1A2B3C4D"}
	for _, sub := range domain.BlockedFastbootSubcommands {
		t.Run(sub, func(t *testing.T) {
			_, err := b.Command(sub, "boot")
			require.ErrorIs(t, err, domain.ErrBlockedSubcommand)
		})
	}
}

func TestBuilder_NamedCommands_ContainNoBlockedTokens(t *testing.T) {
	b := Builder{Serial: "1A2B3C4D"}

	commands := []domain.ExecCommand{
		b.Devices(),
		b.GetvarAll(),
	}
	for _, target := range []string{RebootSystem, RebootBootloader, RebootRecovery} {
		cmd, err := b.Reboot(target)
		require.NoError(t, err)
		commands = append(commands, cmd)
	}

	for _, cmd := range commands {
		for _, arg := range cmd.Argv() {
			assert.False(t, domain.IsBlockedFastbootSubcommand(arg),
				"command %q contains blocked token %q", cmd.String(), arg)
		}
	}
}

func TestBuilder_Reboot(t *testing.T) {
	b := Builder{}

	cmd, err := b.Reboot(RebootSystem)
	require.NoError(t, err)
	assert.Equal(t, []string{"fastboot", "reboot"}, cmd.Argv())

	cmd, err = b.Reboot(RebootBootloader)
	require.NoError(t, err)
	assert.Equal(t, []string{"fastboot", "reboot", "bootloader"}, cmd.Argv())

	cmd, err = b.Reboot(RebootRecovery)
	require.NoError(t, err)
	assert.Equal(t, []string{"fastboot", "reboot", "recovery"}, cmd.Argv())

	_, err = b.Reboot("edl")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestBuilder_SerialBaseArgs(t *testing.T) {
	cmd := Builder{Serial: "1A2B3C4D"}.GetvarAll()
	assert.Equal(t, []string{"fastboot", "-s", "1A2B3C4D", "getvar", "all"}, cmd.Argv())
}
