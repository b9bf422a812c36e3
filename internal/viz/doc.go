// Package viz renders the machine in the terminal.
//
// The interactive view is a Bubble Tea program:
//
//   - [Canvas]: Braille-based pixel surface with a glyph overlay for
//     pole labels
//   - [Camera]: perspective projection with painter's-algorithm depth
//     ordering, optionally following the rotation angle
//   - [Model]: the live view - rotating wireframe, asciigraph operating
//     curves, and keyboard sliders for the machine parameters
//
// A 50 ms tick advances the rotation angle; parameter edits recompute
// readings and curves immediately, without waiting for the next tick.
// Geometry-affecting toggles tear the animation down and rebuild it
// from angle zero instead of patching the scene.
package viz
