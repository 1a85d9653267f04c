/*
Package observability provides tools for monitoring the Pipework engine.

It exposes engine activity (outcome statuses, pipe faults, recording
latency) as Prometheus metrics, fed through the engine's lifecycle hooks.
*/
package observability
