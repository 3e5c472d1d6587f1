// Package log provides logging functionality tuned for design-document
// scanning, built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Automatic truncation of oversized attribute values (layer names and
//     layer paths in design files are user-entered and can be enormous)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Usage
//
//	// Create a logger
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Info("icon validated",
//	    "icon", "icon/home",
//	    "layerPath", longPath,  // Truncated if over the limit
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
