// Package decorate folds an ordered list of story decorators around a
// render function into a single reusable Pipeline.
//
// The fold runs exactly once per Build call: the first-declared decorator
// becomes the innermost wrapper (closest to the render function) and the
// last-declared decorator the outermost, so declaration order [A, B, C]
// executes C, B, A, render. Each Pipeline owns one private current-context
// cell that NextFunc merges into on every hop.
//
// Key operations:
// - Build: compose decorators and a render function into a Pipeline
// - Pipeline.Render: run one invocation with an externally supplied context
package decorate
