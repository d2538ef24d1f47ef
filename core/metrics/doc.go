// Package metrics publishes reconciliation outcomes to Prometheus.
//
// Collectors live on a private registry so tests and multiple servers in one
// process never collide on the default one.
package metrics
