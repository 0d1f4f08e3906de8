// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package operates on complex spectrum bins produced by the FFT backend
// and provides helpers for magnitude/power/phase extraction and dominant
// frequency detection on real-valued signals.
package spectrum
