// Package registry keeps composed stories keyed by their canonical id.
// Each story's pipeline is built exactly once when the story is added;
// Render looks the pipeline up and invokes it, tagging every invocation
// with a unique id in the structured logs.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/nsheaps/storybook/pkg/story"
	"github.com/nsheaps/storybook/pkg/story/compose"
)

var (
	ErrDuplicateStory = errors.New("registry: story already registered")
	ErrStoryNotFound  = errors.New("registry: story not found")
)

// Store holds composed stories for one project. The zero value is not
// usable; construct with NewStore.
type Store[R any] struct {
	project compose.Project[R]
	logger  *slog.Logger

	mu      sync.RWMutex
	stories map[string]compose.Composed[R]
}

// NewStore creates a store applying the given project-level annotations to
// every story added. A nil logger falls back to slog.Default().
func NewStore[R any](project compose.Project[R], logger *slog.Logger) *Store[R] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store[R]{
		project: project,
		logger:  logger,
		stories: make(map[string]compose.Composed[R]),
	}
}

// Add composes and builds the story under the component's title and
// registers it. The returned id is compose.ToID(title, name). Registering
// the same id twice fails with ErrDuplicateStory.
func (s *Store[R]) Add(component compose.Component[R], st compose.Story[R]) (string, error) {
	composed, err := compose.ComposeStory(s.project, component, st)
	if err != nil {
		return "", err
	}
	id := composed.Initial.ID

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.stories[id]; exists {
		return "", fmt.Errorf("%w: %s", ErrDuplicateStory, id)
	}
	s.stories[id] = composed

	s.logger.Debug("story registered",
		slog.String("story_id", id),
		slog.String("title", component.Title),
		slog.String("name", st.Name),
	)
	return id, nil
}

// Get returns the composed story for id, if registered.
func (s *Store[R]) Get(id string) (compose.Composed[R], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	composed, ok := s.stories[id]
	return composed, ok
}

// IDs returns the registered story ids in sorted order.
func (s *Store[R]) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.stories))
	for id := range s.stories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Render invokes the story's pipeline with its canonical initial context,
// optionally extended by override (merged with the usual core-field
// protection). Errors from the chain are returned as-is; the store only
// logs them. A single story's pipeline is not safe for concurrent Render
// calls; render concurrently across different stories, not within one.
func (s *Store[R]) Render(ctx context.Context, id string, override *story.Context) (R, error) {
	composed, ok := s.Get(id)
	if !ok {
		var zero R
		return zero, fmt.Errorf("%w: %s", ErrStoryNotFound, id)
	}

	invocation := uuid.New().String()
	s.logger.Info("render started",
		slog.String("story_id", id),
		slog.String("invocation_id", invocation),
	)

	result, err := composed.Pipeline.Render(ctx, story.Merge(composed.Initial, override))
	if err != nil {
		s.logger.Error("render failed",
			slog.String("story_id", id),
			slog.String("invocation_id", invocation),
			slog.String("error", err.Error()),
		)
		return result, err
	}

	s.logger.Info("render completed",
		slog.String("story_id", id),
		slog.String("invocation_id", invocation),
	)
	return result, nil
}
