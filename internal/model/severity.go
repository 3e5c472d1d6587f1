package model

// Severity represents how strongly a validation finding affects icon
// completion.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Severity int

const (
	// SeverityInfo indicates purely diagnostic findings that never affect
	// pass/fail. Examples: sub-pixel alignment notices, near-proximity
	// vector pairs.
	SeverityInfo Severity = iota

	// SeverityWarning indicates a tolerated deviation a human should
	// double-check but that does not block completion.
	// Example: a 1.5px or 1.75px stroke on a functional icon.
	SeverityWarning

	// SeverityError indicates a hard design-system rule violation that
	// blocks the icon from being treated as complete. Examples: wrong
	// frame size, safety-zone violations, missing required colors.
	SeverityError
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// RuleInfo contains metadata about a rule including severity, impact
// description, and remediation recommendation. Report writers use it to
// annotate findings with context beyond the raw message text.
type RuleInfo struct {
	Severity       Severity
	Impact         string
	Recommendation string
}

// ruleInfoMapping maps rule identifiers to their metadata.
// This centralized mapping ensures consistent presentation across report
// formats.
//
// Design decision: We use a map rather than embedding the metadata in each
// issue because:
// 1. It allows updating guidance text without touching validator logic
// 2. It provides a single source of truth for rule severity
// 3. It makes it easy to generate rule documentation
var ruleInfoMapping = map[string]RuleInfo{
	// ERROR - blocks icon completion
	"frame_not_square": {
		Severity:       SeverityError,
		Impact:         "Non-square frames break grid alignment when icons are placed in layouts.",
		Recommendation: "Resize the frame so width and height are equal.",
	},
	"frame_size": {
		Severity:       SeverityError,
		Impact:         "Icons built on unsupported frame sizes do not match any master template and cannot be published.",
		Recommendation: "Rebuild the icon on a supported master template size.",
	},
	"container_missing": {
		Severity:       SeverityError,
		Impact:         "Without a Container child frame the icon structure cannot be validated or exported.",
		Recommendation: "Add a child frame named \"Container\" holding the icon artwork.",
	},
	"container_name": {
		Severity:       SeverityError,
		Impact:         "Misnamed container frames break automated export tooling that looks up the frame by name.",
		Recommendation: "Rename the child frame to exactly \"Container\".",
	},
	"container_size": {
		Severity:       SeverityError,
		Impact:         "A container that does not fill its parent frame shifts every downstream safety-zone measurement.",
		Recommendation: "Resize the Container frame to match the parent frame exactly.",
	},
	"container_empty": {
		Severity:       SeverityError,
		Impact:         "An empty container produces a blank icon on export.",
		Recommendation: "Place the icon artwork inside the Container frame.",
	},
	"no_vectors": {
		Severity:       SeverityError,
		Impact:         "A container without vector shapes produces a blank icon on export.",
		Recommendation: "Draw or paste the icon artwork as vector shapes inside the Container frame.",
	},
	"stroke_width": {
		Severity:       SeverityError,
		Impact:         "Non-standard stroke widths make icons look inconsistent next to the rest of the set.",
		Recommendation: "Use the standard 2px stroke width.",
	},
	"safety_zone": {
		Severity:       SeverityError,
		Impact:         "Artwork inside the safety zone gets visually clipped when icons are rendered in tight layouts.",
		Recommendation: "Move or shrink the shape so it clears the safety zone on every edge.",
	},
	"content_size": {
		Severity:       SeverityError,
		Impact:         "Oversized content overflows the area reserved by the safety zones.",
		Recommendation: "Scale the artwork down to fit within the content area.",
	},
	"color_pair": {
		Severity:       SeverityError,
		Impact:         "Illustrative icons without the required color pair do not match the visual language of the set.",
		Recommendation: "Use at least one black/dark-gray color and one red accent color.",
	},

	// WARNING - tolerated deviation, verify manually
	"stroke_width_small": {
		Severity:       SeverityWarning,
		Impact:         "Smaller stroke widths are tolerated on small templates but thin out the icon when scaled.",
		Recommendation: "Verify the smaller stroke width is intentional for this size.",
	},

	// INFO - purely diagnostic
	"subpixel_alignment": {
		Severity:       SeverityInfo,
		Impact:         "Content dimensions off the quarter-pixel grid can render blurry at small sizes.",
		Recommendation: "Snap the content width and height to the nearest quarter pixel.",
	},
	"proximity": {
		Severity:       SeverityInfo,
		Impact:         "Shapes less than a pixel apart tend to merge visually at render time.",
		Recommendation: "Keep at least 1px between separate shapes, or merge them deliberately.",
	},
}

// GetRuleInfo returns the full rule information for a rule identifier.
// Returns a default RuleInfo with SeverityInfo if the rule is not in the
// mapping.
func GetRuleInfo(rule string) RuleInfo {
	if info, ok := ruleInfoMapping[rule]; ok {
		return info
	}
	return RuleInfo{
		Severity:       SeverityInfo,
		Impact:         "Unknown rule. Review manually.",
		Recommendation: "Investigate the finding and assess impact.",
	}
}

// GetSeverity returns the severity level for a rule identifier.
// Returns SeverityInfo if the rule is not in the mapping.
func GetSeverity(rule string) Severity {
	if info, ok := ruleInfoMapping[rule]; ok {
		return info.Severity
	}
	return SeverityInfo
}
