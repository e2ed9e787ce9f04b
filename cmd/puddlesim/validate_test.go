package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwmisl/puddle-core/config"
)

func writeChipFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chip.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestValidate_ValidChipExitsCleanly(t *testing.T) {
	chipPath = writeChipFile(t, `
board:
  - ["auto", "auto"]
`)
	var out bytes.Buffer
	validateCmd.SetOut(&out)

	err := validateCmd.RunE(validateCmd, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "is valid")
}

func TestValidate_DuplicatePinExitsWithWrappedConfigError(t *testing.T) {
	chipPath = writeChipFile(t, `
board:
  - ["0", "0"]
`)

	err := validateCmd.RunE(validateCmd, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrDuplicatePin)

	var cfgErr *config.Error
	require.ErrorAs(t, err, &cfgErr)
}
