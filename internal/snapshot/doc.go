// Package snapshot loads exported design-document snapshots into the node
// tree the rest of the scanner works on.
//
// A snapshot is the JSON export of a single page: a root node with the
// page's top-level frames as children, each node carrying the host's type
// string, position, size, paints, and optional pre-computed geometry.
// The loader converts that dynamically-typed tree into the closed set of
// extract node variants and discards node types the scanner has no use
// for (text, slices, component sets).
package snapshot
