// Package extract walks an icon node subtree and flattens every leaf shape
// into a model.VectorFact snapshot for the validators.
//
// The host document tree is represented as an explicit tagged-variant type
// (Frame, Group, Shape) rather than a dynamically probed union, so the
// compiler enforces which fields are accessible on which node kind.
//
// Bounds for each leaf are resolved through a three-tier fallback chain
// (see BoundsResolver) so that validators behave identically whether the
// snapshot came from a live host session or a reconstructed test fixture.
package extract
