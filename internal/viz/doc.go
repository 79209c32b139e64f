// Package viz renders simulation results in the terminal.
//
// The package implements a result viewer using the Bubble Tea framework:
//
//   - [Player]: sequential playback of the three result passes
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - [Wireframe] and [Camera]: 3D projection of the ring assembly
//   - Theme selection with built-in color schemes
//
// # Key Bindings
//
//	Tab/Enter - Advance to the next pass
//	Space     - Pause/Resume snapshot playback
//	R         - Restart the current pass
//	T         - Cycle color themes
//	G         - Toggle GIF recording
//	?         - Show help overlay
//	[ ]       - Step snapshot frames
//
// # Recording
//
// The viewer records sessions as GIF animations using the G key.
// Recordings are saved to the current directory.
package viz
