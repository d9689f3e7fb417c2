// Package metrics declares the Prometheus collectors of the bot backend.
//
// Collectors register with the default registry at package init; the start
// command exposes them on GET /metrics.
package metrics
