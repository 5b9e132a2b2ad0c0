// Package rng provides the deterministic random stream that drives every
// outcome in the simulation. The generator is mulberry32: a 32-bit state
// machine whose output is bit-for-bit reproducible for a given seed, so a
// day's events replay identically until the day counter moves.
package rng

import "time"

// Source is a mulberry32 generator. A fresh Source is constructed once per
// in-game day; it is never shared across days.
type Source struct {
	state uint32
}

// New creates a generator seeded with the given 32-bit seed.
func New(seed uint32) *Source {
	return &Source{state: seed}
}

// NewForDay creates the generator for an in-game day: the calendar seed of
// the real-world date plus the day counter.
func NewForDay(today time.Time, day int) *Source {
	return New(DailySeed(today) + uint32(day))
}

// DailySeed maps a calendar date to its seed: year*10000 + month*100 + day.
func DailySeed(t time.Time) uint32 {
	y, m, d := t.Date()
	return uint32(y)*10000 + uint32(m)*100 + uint32(d)
}

// Next returns the next float in [0, 1). All arithmetic wraps at 32 bits.
func (s *Source) Next() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t += (t ^ (t >> 7)) * (t | 61)
	return float64(t^(t>>14)) / 4294967296.0
}

// IntN returns an integer in [0, n). n must be positive.
func (s *Source) IntN(n int) int {
	return int(s.Next() * float64(n))
}

// Around returns an integer uniformly drawn from [base-variance, base+variance].
func (s *Source) Around(base, variance int) int {
	min := base - variance
	max := base + variance
	return s.IntN(max-min+1) + min
}
