// Package rng provides the seeded random source used by the battle engine.
//
// The order in which the engine calls into an RNG is part of its contract.
// For a single action the rolls happen in this order, and only when the
// pipeline reaches them:
//
//  1. before-move rolls: thaw (Strict only), confusion self-hit, full paralysis
//  2. accuracy
//  3. critical hit
//  4. damage variance (only when the pre-random damage is above 1)
//  5. secondary effect chance
//  6. durations and selections: sleep, confusion, thrash, bide, disable
//     (duration then slot), trapping, multi-hit count, psywave, metronome,
//     mimic
//
// At the start of a turn a speed-tie roll is made only when both actions
// land in the same priority tier with equal speed and the tie is broken by a
// coin flip.
package rng

// Source produces raw 32-bit values.
type Source interface {
	Next() uint32
}

// PSRNG is a 64-bit linear congruential generator seeded from four 16-bit
// words, most significant word first.
type PSRNG struct {
	seed uint64
}

// NewPSRNG returns a PSRNG for the given seed.
func NewPSRNG(seed [4]uint16) *PSRNG {
	return &PSRNG{seed: uint64(seed[0])<<48 | uint64(seed[1])<<32 | uint64(seed[2])<<16 | uint64(seed[3])}
}

// Next advances the seed and returns its upper 32 bits.
func (p *PSRNG) Next() uint32 {
	p.seed = p.seed*0x5D588B656C078965 + 0x269EC3
	return uint32(p.seed >> 32)
}

// Seed returns the current state as four 16-bit words.
func (p *PSRNG) Seed() [4]uint16 {
	return [4]uint16{
		uint16(p.seed >> 48), uint16(p.seed >> 32),
		uint16(p.seed >> 16), uint16(p.seed),
	}
}

// Clone returns an independent copy at the same position.
func (p *PSRNG) Clone() Source {
	c := *p
	return &c
}

// Cloner is implemented by sources that can be copied without sharing state.
type Cloner interface {
	Clone() Source
}

// RNG draws bounded values from a Source and counts every call.
type RNG struct {
	src   Source
	calls uint64
}

// New wraps src.
func New(src Source) *RNG {
	return &RNG{src: src}
}

// Range returns a value in [0, bound). A zero bound always yields zero but
// still advances the source.
func (r *RNG) Range(bound uint32) uint32 {
	r.calls++
	return uint32(uint64(r.src.Next()) * uint64(bound) >> 32)
}

// Chance reports whether a roll out of denominator lands below numerator.
func (r *RNG) Chance(numerator, denominator uint32) bool {
	return r.Range(denominator) < numerator
}

// Calls returns how many values have been drawn.
func (r *RNG) Calls() uint64 { return r.calls }

// Source returns the underlying source.
func (r *RNG) Source() Source { return r.src }

// Clone copies the RNG. It returns nil when the source can't be copied.
func (r *RNG) Clone() *RNG {
	c, ok := r.src.(Cloner)
	if !ok {
		return nil
	}
	return &RNG{src: c.Clone(), calls: r.calls}
}
