// Package config loads a chip description — the board's pin layout and its
// peripheral attachments — from YAML into a *chip.Grid, plus the router's
// random seed read from the same file. Search budgets are not configurable.
package config
