// Package validate checks icon frames against the numeric design-system
// specification: master template sizes, stroke-width tables, safety-zone
// clearance, content-size caps, color-pair requirements, sub-pixel
// alignment, and inter-vector spacing.
//
// Two rule profiles share one engine: the strict functional profile
// (32/24/20px templates, 2px safety zone) and the simplified illustrative
// profile (64px template, 4px safety zone, required black/red color pair).
// The profiles differ only in their constants and in which optional checks
// run; boundary semantics are identical.
//
// Validation is a single synchronous, side-effect-free call over an
// already-materialized snapshot. Structural failures short-circuit: once a
// fatal structural problem is found, content-level checks are skipped so
// callers never see cascading messages about content that was never really
// validated. Business-rule outcomes are reported as findings in the
// ValidationResult, never as Go errors; the validator does not fail for
// ordinary invalid-but-well-formed input.
package validate
