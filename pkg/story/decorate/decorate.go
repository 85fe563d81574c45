package decorate

import (
	"context"
	"errors"

	"github.com/nsheaps/storybook/pkg/story"
)

var (
	ErrNilRender    = errors.New("decorate: nil render function")
	ErrNilDecorator = errors.New("decorate: nil decorator")
)

// frame is one link of a composed chain: either the render function or a
// decorator closed over everything inside it.
type frame[R any] func(ctx context.Context, sc story.Context) (R, error)

// Pipeline is the reusable entry point produced by Build. It is safe to
// store and invoke repeatedly; the chain is never rebuilt per call.
//
// Concurrency contract: execution is single-threaded and cooperative. A
// decorator may block before calling next, and two distinct Pipelines never
// interfere while blocked, because each Build allocates its own
// current-context cell. Invoking the SAME Pipeline from two goroutines at
// once is not isolated: both invocations share the one cell and can observe
// each other's merges. Callers needing concurrent renders of the same story
// must build one Pipeline per concurrent invocation or serialize calls.
type Pipeline[R any] struct {
	entry frame[R]

	// current is the per-pipeline context cell. It is overwritten at the
	// start of each invocation and after every next call, never recreated.
	current story.Context
}

// Build composes decorators around render into a Pipeline. The fold runs
// once, here; the decorator slice is captured by value, so mutating it
// afterwards does not affect the Pipeline. An empty or nil decorator list
// yields a Pipeline that just calls render.
func Build[R any](render story.RenderFunc[R], decorators []story.Decorator[R]) (*Pipeline[R], error) {
	if render == nil {
		return nil, ErrNilRender
	}
	for _, d := range decorators {
		if d == nil {
			return nil, ErrNilDecorator
		}
	}

	p := &Pipeline[R]{}
	acc := frame[R](func(ctx context.Context, sc story.Context) (R, error) {
		return render(ctx, sc)
	})
	for _, d := range decorators {
		acc = p.wrap(d, acc)
	}
	p.entry = acc
	return p, nil
}

// wrap produces the frame for one decorator around everything inside it.
// The NextFunc handed to the decorator merges its update into the shared
// cell and descends; calling it again re-runs the remainder of the chain
// seeded with the cell's value at that moment.
func (p *Pipeline[R]) wrap(d story.Decorator[R], inner frame[R]) frame[R] {
	return func(ctx context.Context, sc story.Context) (R, error) {
		next := story.NextFunc[R](func(ctx context.Context, update *story.Context) (R, error) {
			merged := story.Merge(p.current, update)
			p.current = merged
			return inner(ctx, merged)
		})
		return d(ctx, next, sc)
	}
}

// Render runs one invocation of the chain with the externally supplied
// context. The outermost decorator observes initial unmodified; the return
// value and any error come from the chain untouched. If a decorator never
// calls next, the chain halts there and that decorator's result is returned.
func (p *Pipeline[R]) Render(ctx context.Context, initial story.Context) (R, error) {
	p.current = initial
	return p.entry(ctx, initial)
}
