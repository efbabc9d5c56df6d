/*
Package observability provides tools for monitoring the Sprout planner.

It turns derivation lifecycle events into structured log records, so hosts
can trace how candidate solutions are grown without touching the engine
itself. Metric collection lives in pkg/adapters/metrics; both can be
combined with Merge.
*/
package observability
