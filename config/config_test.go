package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/config"
)

const validChip = `
board:
  - ["auto", "auto", "auto"]
  - ["auto", "auto", "empty"]
peripherals:
  "0,0":
    kind: heater
    pwm_channel: 1
    spi_channel: 2
  "0,2":
    kind: input
    pwm_channel: 3
    name: "in1"
router:
  seed: 42
`

func TestLoad_ValidChipProducesGridWithPeripheralSides(t *testing.T) {
	grid, tuning, err := config.Load("", config.WithReader(strings.NewReader(validChip)))
	require.NoError(t, err)

	cell, ok := grid.Get(chip.Location{Y: 0, X: 0})
	require.True(t, ok)
	require.NotNil(t, cell.Peripheral)
	assert.Equal(t, chip.KindHeater, cell.Peripheral.Kind)

	inputCell, ok := grid.Get(chip.Location{Y: 0, X: 2})
	require.True(t, ok)
	require.NotNil(t, inputCell.Peripheral)
	assert.Equal(t, chip.SideRight, inputCell.Peripheral.Side)

	_, ok = grid.Get(chip.Location{Y: 1, X: 2})
	assert.False(t, ok, "empty board entries must not produce a cell")

	require.NotNil(t, tuning.RouterSeed)
	assert.Equal(t, int64(42), *tuning.RouterSeed)
}

func TestLoad_DuplicatePinFails(t *testing.T) {
	const doc = `
board:
  - ["0", "0"]
`
	_, _, err := config.Load("", config.WithReader(strings.NewReader(doc)))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrDuplicatePin)
}

func TestLoad_UnknownPeripheralCoordinateFails(t *testing.T) {
	const doc = `
board:
  - ["auto"]
peripherals:
  "5,5":
    kind: heater
`
	_, _, err := config.Load("", config.WithReader(strings.NewReader(doc)))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownCell)
}

func TestLoad_InvalidPeripheralKindFails(t *testing.T) {
	const doc = `
board:
  - ["auto"]
peripherals:
  "0,0":
    kind: nonsense
`
	_, _, err := config.Load("", config.WithReader(strings.NewReader(doc)))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidPeripheralKind)
}
