package rng

import "fmt"

const (
	// Min is the raw value that makes every Range call return 0.
	Min uint32 = 0
	// Max is the raw value that makes every Range call return bound-1.
	Max uint32 = 0xFFFFFFFF
)

// Roll returns the smallest raw value for which Range(bound) yields k.
func Roll(k, bound uint32) uint32 {
	return uint32((uint64(k)<<32 + uint64(bound) - 1) / uint64(bound))
}

// Fixed is a scripted Source that replays a fixed list of raw values.
// Drawing past the end of the script is recorded and yields Min.
type Fixed struct {
	rolls []uint32
	index int
	over  int
}

// NewFixed returns a Fixed source for rolls.
func NewFixed(rolls ...uint32) *Fixed {
	return &Fixed{rolls: rolls}
}

func (f *Fixed) Next() uint32 {
	if f.index >= len(f.rolls) {
		f.over++
		return Min
	}
	v := f.rolls[f.index]
	f.index++
	return v
}

// Exhausted reports whether every scripted roll was consumed and no more.
func (f *Fixed) Exhausted() bool {
	return f.index == len(f.rolls) && f.over == 0
}

// Err describes a mismatch between the script and what was drawn.
func (f *Fixed) Err() error {
	switch {
	case f.over > 0:
		return fmt.Errorf("rng: %d roll(s) drawn past the end of a %d roll script", f.over, len(f.rolls))
	case f.index < len(f.rolls):
		return fmt.Errorf("rng: %d of %d scripted roll(s) unused", len(f.rolls)-f.index, len(f.rolls))
	}
	return nil
}

// Used returns how many scripted rolls have been drawn.
func (f *Fixed) Used() int { return f.index }

func (f *Fixed) Clone() Source {
	c := &Fixed{rolls: make([]uint32, len(f.rolls)), index: f.index, over: f.over}
	copy(c.rolls, f.rolls)
	return c
}
