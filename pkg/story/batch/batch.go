package batch

import (
	"context"
	"sort"
	"sync"

	"github.com/nsheaps/storybook/pkg/story/registry"
)

// DefaultWorkers is the pool size when the context carries no option.
const DefaultWorkers = 4

type optionKey string

const workerOptionKey optionKey = "batch_workers"

// WithWorkers returns a context carrying the worker pool size for RenderAll.
func WithWorkers(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, workerOptionKey, n)
}

func workerCount(ctx context.Context) int {
	if n, ok := ctx.Value(workerOptionKey).(int); ok && n > 0 {
		return n
	}
	return DefaultWorkers
}

// Outcome is the result of rendering one story.
type Outcome[R any] struct {
	ID     string
	Result R
	Err    error
}

// RenderAll renders every registered story and returns one Outcome per id,
// sorted by id. Ids are fanned out to a worker pool; once ctx is done,
// remaining ids are marked with ctx.Err() instead of being rendered.
func RenderAll[R any](ctx context.Context, store *registry.Store[R]) []Outcome[R] {
	ids := store.IDs()

	idCh := make(chan string)
	outCh := make(chan Outcome[R])
	var wg sync.WaitGroup

	workers := workerCount(ctx)
	if workers > len(ids) {
		workers = len(ids)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range idCh {
				select {
				case <-ctx.Done():
					outCh <- Outcome[R]{ID: id, Err: ctx.Err()}
					continue
				default:
				}
				result, err := store.Render(ctx, id, nil)
				outCh <- Outcome[R]{ID: id, Result: result, Err: err}
			}
		}()
	}

	go func() {
		defer close(idCh)
		for _, id := range ids {
			idCh <- id
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make([]Outcome[R], 0, len(ids))
	for outcome := range outCh {
		outcomes = append(outcomes, outcome)
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].ID < outcomes[j].ID })
	return outcomes
}
