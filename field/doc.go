// Package field renders a two-source metaball intensity field into the pixel
// grid of a [lut.Region].
//
// Each frame moves two sources along Lissajous paths, sums their inverse
// distances at every cell, and quantizes the sum through a smoothstep curve
// to a level in [0, lut.MaxLevel]. The trig and distance primitives are
// pluggable so the same renderer can run on exact math, on the engine's
// lookup tables, or on the algo-approx fast square root.
package field
