package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCommandStructure(t *testing.T) {
	assert.NotNil(t, resolveCmd)
	assert.Equal(t, "resolve <mobile>", resolveCmd.Use)
	assert.NotEmpty(t, resolveCmd.Short)
	assert.NotEmpty(t, resolveCmd.Long)
	assert.NotNil(t, resolveCmd.RunE)
}

func TestResolveCommandFlags(t *testing.T) {
	jsonFlag := resolveCmd.Flags().Lookup("json")
	assert.NotNil(t, jsonFlag)
	assert.Equal(t, "false", jsonFlag.DefValue)
}

func TestResolveIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "resolve" {
			found = true
			break
		}
	}
	assert.True(t, found, "resolve command should be added to root command")
}

func TestResolveCommandExample(t *testing.T) {
	// Verify the command has example usage documentation
	assert.Contains(t, resolveCmd.Long, "Example:")
	assert.Contains(t, resolveCmd.Long, "deeplink resolve")
}

func TestResolveRejectsInvalidNumber(t *testing.T) {
	err := runResolve(resolveCmd, []string{"not a number"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid phone number")
}
