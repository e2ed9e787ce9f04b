package executor

// HardwareSink is the boundary between the executor and a real chip: it
// receives the full pin-activation vector once per tick. A production
// implementation pushes it to the hardware's GPIO/SPI driver; tests and
// simulation use NopSink.
type HardwareSink interface {
	Sync(pins [2]uint64) error
}

// NopSink discards every tick, the default when no hardware is attached.
type NopSink struct{}

// Sync implements HardwareSink.
func (NopSink) Sync(pins [2]uint64) error { return nil }

var _ HardwareSink = NopSink{}
