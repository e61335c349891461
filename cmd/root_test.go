package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["status"])
	assert.True(t, names["fill"])

	flag := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)
}

func TestFillFlags(t *testing.T) {
	for name, shorthand := range map[string]string{
		"month":       "m",
		"year":        "y",
		"dry-run":     "d",
		"today":       "t",
		"up-to-today": "u",
	} {
		flag := fillCmd.Flags().Lookup(name)
		require.NotNil(t, flag, "missing flag --%s", name)
		assert.Equal(t, shorthand, flag.Shorthand, "--%s", name)
	}
}
