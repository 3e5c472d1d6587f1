package model

// ValidationIssue is a single finding produced by a validator.
// The same shape is used for all three severities; the containing slice
// in ValidationResult determines whether the issue is an error, a warning,
// or informational.
type ValidationIssue struct {
	// Rule identifies the rule that produced this issue.
	// It maps to the ruleInfoMapping in severity.go.
	Rule string `json:"rule"`

	// Message is the human-readable finding. Computed numbers are rendered
	// to 2 decimal places and offending values are wrapped in ** markers.
	// The exact text is part of the external contract: the UI renders it
	// verbatim and golden tests assert on it.
	Message string `json:"message"`

	// Node is the name of the node the issue refers to.
	Node string `json:"node"`
}

// ValidationResult is the outcome of validating one icon frame.
//
// IsValid is true iff Errors is empty; warnings and information never
// affect validity. The arrays preserve the deterministic order in which
// checks ran, so two validations of the same snapshot are byte-identical
// when serialized.
type ValidationResult struct {
	// IsValid is true when no errors were found.
	IsValid bool `json:"is_valid"`

	// Errors are hard design-system rule violations that block completion.
	Errors []ValidationIssue `json:"errors"`

	// Warnings are tolerated deviations a human should double-check.
	Warnings []ValidationIssue `json:"warnings"`

	// Information contains purely diagnostic notes.
	Information []ValidationIssue `json:"information"`

	// VectorPositions holds one diagnostic position record per leaf shape.
	VectorPositions []VectorPositionInfo `json:"vector_positions,omitempty"`
}

// NewValidationResult creates an empty result that is valid until the
// first error is added.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid:     true,
		Errors:      make([]ValidationIssue, 0),
		Warnings:    make([]ValidationIssue, 0),
		Information: make([]ValidationIssue, 0),
	}
}

// AddError appends an error finding and marks the result invalid.
func (r *ValidationResult) AddError(rule, message, node string) {
	r.Errors = append(r.Errors, ValidationIssue{Rule: rule, Message: message, Node: node})
	r.IsValid = false
}

// AddWarning appends a warning finding. Warnings do not affect IsValid.
func (r *ValidationResult) AddWarning(rule, message, node string) {
	r.Warnings = append(r.Warnings, ValidationIssue{Rule: rule, Message: message, Node: node})
}

// AddInformation appends an informational finding.
// Information never affects IsValid.
func (r *ValidationResult) AddInformation(rule, message, node string) {
	r.Information = append(r.Information, ValidationIssue{Rule: rule, Message: message, Node: node})
}

// TotalIssues returns the total number of findings across all severities.
func (r *ValidationResult) TotalIssues() int {
	return len(r.Errors) + len(r.Warnings) + len(r.Information)
}
