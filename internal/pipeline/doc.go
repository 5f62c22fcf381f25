// Package pipeline runs independent trial workers in parallel, each with its
// own seeded generator, and funnels their records through one collector that
// enforces the global stop count.
//
// The only contract to implement is Runner (Run). This keeps the pipeline
// swappable and testable.
package pipeline
