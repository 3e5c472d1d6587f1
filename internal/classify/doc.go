// Package classify assigns icons to organizational packages based on
// spatial overlap with named layout frames.
//
// The classifier tolerates icons that are not perfectly contained within a
// layout frame (partial drags, resizes) by choosing the frame with the
// greatest overlap area, while remaining deterministic under exact ties.
// Determinism matters because batch exports must be reproducible.
package classify
