// Package config provides configuration structures and utilities for
// iconscan. It defines the main options for scanning snapshot files,
// rule-profile selection, and report generation preferences.
package config
