// Package geometry turns a machine operating point into drawable 3D
// primitives, one frame at a time.
//
// The single entry point is [Build], which maps (machine.State, theta)
// to a [Frame] of lines, arrows, and labels:
//
//   - armature cylinder and shaft (theta-independent)
//   - stator pole prisms with N/S labels
//   - optional flux curves whose sweep scales with flux density
//   - optional commutator ring rotating with theta, plus brush contacts
//   - representative conductor bars with Fleming's-rule arrow pairs
//
// Frames are ephemeral: Build recomputes everything from scratch each
// tick and renderers discard the result after drawing. Every primitive
// carries a [Part] tag so each render target maps parts to its own
// colors or glyphs.
package geometry
