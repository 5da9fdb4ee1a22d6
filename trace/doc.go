// Package trace builds styled, renderable series from grouped points.
//
// Build covers four cases: single or dual axis, each grouped or ungrouped.
// Colors cycle through DefaultPalette by series index. Secondary-axis traces
// use DefaultAccent, a dashed line and a diamond marker.
package trace
