package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/uwmisl/puddle-core/chip"
)

// Option configures a Load call.
type Option func(*loadOptions)

type loadOptions struct {
	reader io.Reader
}

// WithReader sources the chip description from r instead of the filesystem,
// for tests that want to load an inline YAML document.
func WithReader(r io.Reader) Option {
	return func(o *loadOptions) { o.reader = r }
}

// Load parses the chip description at path (or from an injected reader, via
// WithReader) into a *chip.Grid plus its tuning knobs.
func Load(path string, opts ...Option) (*chip.Grid, Tuning, error) {
	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	var data []byte
	var err error
	if o.reader != nil {
		data, err = io.ReadAll(o.reader)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, Tuning{}, &Error{Where: "reading chip description", Err: err}
	}

	var doc chipDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, Tuning{}, &Error{Where: "parsing chip description", Err: err}
	}

	grid, err := buildGrid(doc)
	if err != nil {
		return nil, Tuning{}, err
	}
	return grid, Tuning{RouterSeed: doc.Router.Seed}, nil
}

type cellSpec struct {
	loc  chip.Location
	auto bool
	pin  int
}

func buildGrid(doc chipDoc) (*chip.Grid, error) {
	specs, usedPins, err := collectBoardEntries(doc.Board)
	if err != nil {
		return nil, err
	}
	assignAutoPins(specs, usedPins)

	cells := make(map[chip.Location]chip.Cell, len(specs))
	for _, s := range specs {
		cells[s.loc] = chip.Cell{Pin: s.pin}
	}

	for key, pd := range doc.Peripherals {
		loc, err := parseCoordinate(key)
		if err != nil {
			return nil, &Error{Where: fmt.Sprintf("peripheral %q", key), Err: err}
		}
		cell, ok := cells[loc]
		if !ok {
			return nil, &Error{Where: fmt.Sprintf("peripheral %q", key), Err: ErrUnknownCell}
		}
		kind, err := parseKind(pd.Kind)
		if err != nil {
			return nil, &Error{Where: fmt.Sprintf("peripheral %q", key), Err: err}
		}
		side, err := parseSide(pd.Side, kind)
		if err != nil {
			return nil, &Error{Where: fmt.Sprintf("peripheral %q", key), Err: err}
		}
		cell.Peripheral = &chip.Peripheral{
			Kind:       kind,
			PWMChannel: pd.PWMChannel,
			SPIChannel: pd.SPIChannel,
			Name:       pd.Name,
			Side:       side,
		}
		cells[loc] = cell
	}

	return chip.NewGrid(cells), nil
}

func collectBoardEntries(board [][]string) ([]cellSpec, map[int]struct{}, error) {
	var specs []cellSpec
	used := make(map[int]struct{})

	for y, row := range board {
		for x, entry := range row {
			trimmed := strings.ToLower(strings.TrimSpace(entry))
			switch trimmed {
			case "", "empty":
				continue
			case "auto":
				specs = append(specs, cellSpec{loc: chip.Location{Y: y, X: x}, auto: true})
			default:
				pin, err := strconv.Atoi(trimmed)
				if err != nil {
					return nil, nil, &Error{Where: fmt.Sprintf("board[%d][%d]", y, x), Err: ErrInvalidBoardEntry}
				}
				if _, dup := used[pin]; dup {
					return nil, nil, &Error{Where: fmt.Sprintf("board[%d][%d]", y, x), Err: ErrDuplicatePin}
				}
				used[pin] = struct{}{}
				specs = append(specs, cellSpec{loc: chip.Location{Y: y, X: x}, pin: pin})
			}
		}
	}
	return specs, used, nil
}

func assignAutoPins(specs []cellSpec, used map[int]struct{}) {
	next := 0
	for i := range specs {
		if !specs[i].auto {
			continue
		}
		for {
			if _, taken := used[next]; !taken {
				break
			}
			next++
		}
		specs[i].pin = next
		used[next] = struct{}{}
		next++
	}
}

func parseCoordinate(key string) (chip.Location, error) {
	parts := strings.Split(key, ",")
	if len(parts) != 2 {
		return chip.Location{}, ErrInvalidCoordinate
	}
	y, errY := strconv.Atoi(strings.TrimSpace(parts[0]))
	x, errX := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errY != nil || errX != nil {
		return chip.Location{}, ErrInvalidCoordinate
	}
	return chip.Location{Y: y, X: x}, nil
}

func parseKind(raw string) (chip.PeripheralKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "heater":
		return chip.KindHeater, nil
	case "input":
		return chip.KindInput, nil
	case "output":
		return chip.KindOutput, nil
	default:
		return chip.KindNone, ErrInvalidPeripheralKind
	}
}

// parseSide resolves an explicit side, or the default convention for kind
// when side is unspecified: input -> right, output -> left.
func parseSide(raw string, kind chip.PeripheralKind) (chip.Side, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		switch kind {
		case chip.KindInput:
			return chip.SideRight, nil
		case chip.KindOutput:
			return chip.SideLeft, nil
		default:
			return chip.SideUnspecified, nil
		}
	case "left":
		return chip.SideLeft, nil
	case "right":
		return chip.SideRight, nil
	case "top":
		return chip.SideTop, nil
	case "bottom":
		return chip.SideBottom, nil
	default:
		return chip.SideUnspecified, ErrInvalidSide
	}
}
