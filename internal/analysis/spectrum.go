package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Spectrum is the one-sided amplitude spectrum of a sampled record.
type Spectrum struct {
	Freqs []float64
	Power []float64
}

// PowerSpectrum computes the one-sided spectrum of samples taken dt
// seconds apart. Bin k sits at k/(n*dt) Hz.
func PowerSpectrum(samples []float64, dt float64) *Spectrum {
	n := len(samples)
	if n < 2 || dt <= 0 {
		return &Spectrum{}
	}

	coeffs := fft.FFTReal(samples)
	half := n / 2
	s := &Spectrum{
		Freqs: make([]float64, half),
		Power: make([]float64, half),
	}
	for k := 0; k < half; k++ {
		s.Freqs[k] = float64(k) / (float64(n) * dt)
		s.Power[k] = cmplx.Abs(coeffs[k]) / float64(n)
	}
	return s
}

// Dominant returns the strongest spectral line, ignoring the DC bin.
// A freely ringing rod peaks at its natural frequency.
func (s *Spectrum) Dominant() (freq, power float64) {
	for k := 1; k < len(s.Power); k++ {
		if s.Power[k] > power {
			power = s.Power[k]
			freq = s.Freqs[k]
		}
	}
	return freq, power
}
