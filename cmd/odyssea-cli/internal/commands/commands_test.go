//go:build unit
// +build unit

package commands

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommands_RegistersTree(t *testing.T) {
	rootCmd := &cobra.Command{Use: "odyssea-cli"}
	configPath := "configs/rest-app.yaml"

	require.NoError(t, InitDatabaseCommands(rootCmd, &configPath))
	require.NoError(t, InitUserCommands(rootCmd, &configPath))
	require.NoError(t, InitNotificationCommands(rootCmd, &configPath))
	require.NoError(t, InitTokenCommands(rootCmd, &configPath))

	for _, path := range [][]string{
		{"migrate"},
		{"seed"},
		{"users", "create-admin"},
		{"notifications", "broadcast"},
		{"tokens", "purge"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	broadcast, _, err := rootCmd.Find([]string{"notifications", "broadcast"})
	require.NoError(t, err)
	priority, err := broadcast.Flags().GetString("priority")
	require.NoError(t, err)
	assert.Equal(t, "medium", priority)
}

func TestBroadcastCmd_RejectsUnknownUserType(t *testing.T) {
	rootCmd := &cobra.Command{Use: "odyssea-cli", SilenceUsage: true, SilenceErrors: true}
	configPath := "does-not-exist.yaml"
	require.NoError(t, InitNotificationCommands(rootCmd, &configPath))

	rootCmd.SetArgs([]string{"notifications", "broadcast", "--user-type", "parent", "--title", "t", "--message", "m"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown user type "parent"`)
}

func TestDemoCatalogue_IsValid(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	for _, entry := range demoCatalogue(now) {
		university := *entry.university
		university.ID = "8f9f2c1e-2b64-4d8a-9c39-2f6a1d9a7c11"
		assert.NoError(t, university.Validate(), university.Name)

		require.NotEmpty(t, entry.formations, university.Name)
		for _, formation := range entry.formations {
			f := *formation
			f.ID = "1b4e28ba-2fa1-41d2-883f-0016d3cca427"
			f.UniversityID = university.ID
			assert.NoError(t, f.Validate(), f.Name)
			assert.False(t, f.DeadlinePassed(now), f.Name)
		}
	}
}
