// Package spectrum describes instrument timbres as partial lists for
// consonance analysis: harmonic, odd-harmonic, and pseudoharmonic
// (prime-retuned) spectra with exponentially decaying amplitudes.
package spectrum
