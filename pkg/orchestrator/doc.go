// Package orchestrator runs the certificate pipeline: table index → record
// resolver → field deriver → template instantiation → artifact packaging,
// one entity at a time, reporting every step to a report.Sink.
package orchestrator
