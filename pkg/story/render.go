package story

import "context"

// RenderFunc produces the final rendered value for a story. It runs at most
// once per chain pass, after every decorator that chose to continue.
type RenderFunc[R any] func(ctx context.Context, sc Context) (R, error)

// NextFunc continues the chain with an optional context extension merged in.
// Passing nil continues with the context unchanged. The return value is the
// result of the remainder of the chain, ultimately the render function's.
type NextFunc[R any] func(ctx context.Context, update *Context) (R, error)

// Decorator wraps the remainder of a chain. It may call next zero times
// (short-circuiting: the render function and all inner decorators never
// run and the decorator's own result becomes the overall result), once, or
// more than once (re-running the remainder, e.g. for retries). A decorator
// may block before calling next; see decorate.Pipeline for the concurrency
// contract.
type Decorator[R any] func(ctx context.Context, next NextFunc[R], sc Context) (R, error)
