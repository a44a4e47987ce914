// Package viz renders simulation results in the terminal.
//
//   - [Live]: Bubble Tea replay of a run, drawing the two atoms and the
//     bond on a braille [Canvas] next to the current energies
//   - [PlotSeries], [PlotEnergies]: asciigraph line charts
//   - [Table]: lipgloss tables for element and comparison listings
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from the first sample
//	+/-   - Double or halve the playback speed
//	[ ]   - Seek backward or forward
//	T     - Cycle color themes
//	Q     - Quit
package viz
