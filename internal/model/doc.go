// Package model defines the core data structures used throughout IconScan.
//
// This package contains the following main types:
//   - Bounds: An axis-aligned rectangle in canvas coordinates
//   - VectorFact: A flattened, read-only fact sheet for a single leaf shape
//   - ValidationResult: The outcome of validating one icon frame
//   - IconReport: The full per-icon scan result including package assignment
//   - ScanReport: The aggregate result over all icons in a document
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (classify, validate, report) need to use
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
// All entities are created fresh per scan and are never mutated afterward;
// no entity outlives the call that produced it.
package model
