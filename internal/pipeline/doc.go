// Package pipeline provides a framework for executing scan steps in sequence.
//
// The pipeline pattern is used to process icon frames through multiple
// stages: package classification and rule validation. Each stage is
// implemented as a Step that receives the current scan and can modify
// its report.
//
// Design decision: We use a pipeline pattern instead of direct function calls
// because:
// 1. It allows easy addition/removal of steps without modifying core logic
// 2. It provides consistent error handling and logging across steps
// 3. It supports cancellation via context for large documents
// 4. It lets classify-only runs drop the validation step cleanly
//
// The pipeline supports both individual scans and batch processing with
// concurrency control using errgroup.
package pipeline
