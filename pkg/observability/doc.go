/*
Package observability provides Prometheus metrics for the nfa checker.

Metrics are registered on a caller-supplied registry so that tests and
embedded uses never collide on the global default registry.
*/
package observability
