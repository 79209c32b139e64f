// Package analysis inspects finished simulation results.
//
// The package works on frozen trajectories rather than live systems:
//
//   - [PowerSpectrum]: one-sided spectrum of the displacement record,
//     with [Spectrum.Dominant] picking out the ringing frequency
//   - [NewPhasePortrait]: displacement-velocity portrait with an ASCII
//     renderer
//
// # Ringing Frequency
//
// Once the pluck ends the rod rings near its natural frequency, so the
// dominant spectral line approximates sqrt(k/m)/(2*pi):
//
//	spec := analysis.PowerSpectrum(result.Trajectory.Displacement, cfg.Dt)
//	freq, _ := spec.Dominant()
package analysis
