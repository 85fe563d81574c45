// Package batch renders every story in a registry concurrently. Each story
// owns its own pipeline (built once when it was added), so concurrent
// renders of different stories cannot contaminate each other's context;
// each id is dispatched to exactly one worker, keeping the one-invocation-
// per-pipeline rule intact.
//
// Key operations:
// - WithWorkers: carry the worker count on the context
// - RenderAll: fan ids out to a worker pool and gather Outcomes
package batch
