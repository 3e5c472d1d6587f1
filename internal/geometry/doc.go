// Package geometry provides the primitive rectangle math that the
// classifier and validators are built on: intersection areas, signed gaps
// between rectangles, bounding-box unions, and edge-distance accounting.
//
// All functions are pure and operate on axis-aligned bounds only. Negative
// coordinates and fractional values are handled identically to positive
// integers; there is no special-casing. Rotation and skew are out of scope.
package geometry
