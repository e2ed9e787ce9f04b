package config

// chipDoc is the raw YAML shape of a chip description.
type chipDoc struct {
	Board       [][]string               `yaml:"board"`
	Peripherals map[string]peripheralDoc `yaml:"peripherals"`
	Router      routerTuningDoc          `yaml:"router"`
}

type peripheralDoc struct {
	Kind       string `yaml:"kind"`
	PWMChannel int    `yaml:"pwm_channel"`
	SPIChannel int    `yaml:"spi_channel"`
	Name       string `yaml:"name"`
	Side       string `yaml:"side"`
}

type routerTuningDoc struct {
	Seed *int64 `yaml:"seed"`
}

// Tuning carries the optional, non-grid knobs a chip description may set.
type Tuning struct {
	RouterSeed *int64
}
