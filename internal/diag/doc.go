// Package diag defines the diagnostic model shared by the lexical pipeline.
//
// Diagnostic is the central record: Severity, a stable numeric Code, a short
// message, the primary source.Span, and optional Notes. Producers emit
// through a Reporter so they stay decoupled from storage and formatting;
// BagReporter aggregates into a capacity-bounded Bag that supports sorting
// and deduplication for deterministic output.
//
// The package performs no formatting or IO. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver and the CLI.
package diag
