// Package orchestrator wires the provider → generator → sink pipeline,
// providing dependency injection friendly helpers for consumers that prefer
// a single entry point.
package orchestrator
