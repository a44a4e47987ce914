// Package analysis extracts vibrational properties from a bond trajectory.
//
//   - [Spectrum]: one-sided power spectrum of a sampled series
//   - [DominantFrequency]: peak of the spectrum, refined between bins
//   - [CrossingPeriod]: mean period from upward mean crossings
//
// The two period estimates are independent; for a well-resolved run they
// agree to within a bin width:
//
//	f, _ := analysis.DominantFrequency(res.Displacements, dt)
//	T, _ := analysis.CrossingPeriod(res.Times, res.Displacements)
package analysis
