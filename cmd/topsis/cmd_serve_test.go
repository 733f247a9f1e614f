package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServeCommand_Flags(t *testing.T) {
	cmd := newServeCommand()
	require.NotNil(t, cmd.Flags().Lookup("port"))
	require.NotNil(t, cmd.Flags().Lookup("config"))
	require.NotNil(t, cmd.Flags().Lookup("prompt-smtp-pass"))
}

func TestServeCommand_MalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topsis.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0o644))

	// The command must fail on the config before binding a port.
	_, err := runCLI(t, "serve", "--config", path)
	require.ErrorContains(t, err, "parsing")
}
