package config

// DocumentConfig holds per-document configuration for a single snapshot
// file. This allows customizing scan behavior per design document.
type DocumentConfig struct {
	// IconType overrides the global icon type for this document.
	// If empty, the global IconType is used.
	IconType string `yaml:"iconType,omitempty"`

	// Packages overrides the package frame names for this document.
	// If empty, the global package list is used.
	Packages []string `yaml:"packages,omitempty"`

	// IgnoreNames are icon frame names to skip during scanning.
	// Names are matched against the frame name using glob syntax.
	IgnoreNames []string `yaml:"ignoreNames,omitempty"`
}

// File represents the structure of the .iconscan configuration file.
type File struct {
	// Documents maps snapshot file names to their per-document
	// configurations. Keys should be the base file name without a
	// directory (e.g., "icons-page.json").
	Documents map[string]DocumentConfig `yaml:"documents,omitempty"`

	// Defaults contains default document configuration applied to all
	// documents unless overridden in the per-document configuration.
	Defaults DocumentConfig `yaml:"defaults,omitempty"`
}

// GetDocumentConfig returns the configuration for a specific snapshot file.
// It merges the per-document configuration with defaults.
func (cf *File) GetDocumentConfig(name string) DocumentConfig {
	// Start with defaults
	result := cf.Defaults

	// Override with per-document configuration if present
	if docConfig, ok := cf.Documents[name]; ok {
		if docConfig.IconType != "" {
			result.IconType = docConfig.IconType
		}
		if len(docConfig.Packages) > 0 {
			result.Packages = docConfig.Packages
		}
		if len(docConfig.IgnoreNames) > 0 {
			result.IgnoreNames = docConfig.IgnoreNames
		}
	}

	return result
}
