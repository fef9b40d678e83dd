// Package wave is a small application used to demonstrate the undo log.
//
// Its state is a sine wave: three primary parameters plus a sample buffer
// derived from them. Committed snapshots drop the samples and rebuild them
// when undo or redo brings the snapshot back.
package wave

import (
	"fmt"
	"math"
	"slices"
)

// SamplesPerCycle is the number of samples generated per wave cycle.
const SamplesPerCycle = 50

// Params are the primary parameters of a sine wave.
type Params struct {
	Amplitude float64
	Frequency float64
	Cycles    int
}

// String formats the parameters as (amplitude, frequency, cycles).
func (p Params) String() string {
	return fmt.Sprintf("(%g, %g, %d)", p.Amplitude, p.Frequency, p.Cycles)
}

// Sine is a sine wave with its derived samples.
type Sine struct {
	Params

	// Samples is derived from Params. Rebuilt by Fill.
	Samples []float64
}

// NewSine creates a sine wave with its samples filled.
func NewSine(p Params) Sine {
	s := Sine{Params: p}
	s.Fill()
	return s
}

// Fill rebuilds the samples from the primary parameters.
func (s *Sine) Fill() {
	n := max(s.Cycles, 0) * SamplesPerCycle
	samples := make([]float64, 0, n)
	for cycle := 0; cycle < s.Cycles; cycle++ {
		for sample := 0; sample < SamplesPerCycle; sample++ {
			samples = append(samples, math.Sin(float64(sample)*s.Frequency/SamplesPerCycle)*s.Amplitude)
		}
	}
	s.Samples = samples
}

// Clear drops the samples.
func (s *Sine) Clear() {
	s.Samples = nil
}

// Clone returns a deep copy.
func (s Sine) Clone() Sine {
	s.Samples = slices.Clone(s.Samples)
	return s
}
