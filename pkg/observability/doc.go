/*
Package observability turns runner lifecycle events into Prometheus metrics.

Metrics owns a private registry, so several runs (or tests) never collide on the
global default registerer. Hooks returns the domain.LifecycleHooks to pass to the
runner; Summary reads the collected values back for the `run --stats` table.
*/
package observability
