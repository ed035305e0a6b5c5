// Package analysis measures how far the lookup engine strays from exact math
// and how much that matters to the field renderer.
//
// The engine documents its error model but makes no accuracy promise beyond
// it, so the bounds are characterized here by sweeping inputs, summarizing the
// errors, looking at the spectrum of a table-driven oscillator, and diffing
// rendered frames between primitive sets. Records carry csv tags for export.
package analysis
