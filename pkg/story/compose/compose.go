package compose

import (
	"maps"
	"regexp"
	"strings"

	"github.com/nsheaps/storybook/pkg/story"
	"github.com/nsheaps/storybook/pkg/story/decorate"
)

// Project carries preview-level annotations applied to every story.
type Project[R any] struct {
	Globals    map[string]any
	Parameters map[string]any
	Args       map[string]any
	Decorators []story.Decorator[R]
}

// Component groups stories under one title and contributes shared
// annotations.
type Component[R any] struct {
	Title      string
	Parameters map[string]any
	Args       map[string]any
	Decorators []story.Decorator[R]
}

// Story is a single authored example of a component.
type Story[R any] struct {
	Name       string
	ViewMode   story.ViewMode
	Parameters map[string]any
	Args       map[string]any
	Render     story.RenderFunc[R]
	Decorators []story.Decorator[R]
}

// Composed is the build product: a reusable pipeline and the canonical
// initial context to invoke it with.
type Composed[R any] struct {
	Pipeline *decorate.Pipeline[R]
	Initial  story.Context
}

// CombineParameters merges annotation maps shallowly, later levels winning
// per key. Nil levels are skipped; the result is always a fresh map (nil
// when every level is empty).
func CombineParameters(levels ...map[string]any) map[string]any {
	var combined map[string]any
	for _, level := range levels {
		if len(level) == 0 {
			continue
		}
		if combined == nil {
			combined = make(map[string]any)
		}
		maps.Copy(combined, level)
	}
	return combined
}

// ComposeStory folds the three annotation levels into one renderable story.
// Decorators run project level first, then component, then story, then the
// render function. The pipeline is built once here; the returned Composed
// value is safe to invoke repeatedly.
func ComposeStory[R any](project Project[R], component Component[R], st Story[R]) (Composed[R], error) {
	// story-first concatenation puts project decorators outermost after the fold
	decorators := make([]story.Decorator[R], 0,
		len(st.Decorators)+len(component.Decorators)+len(project.Decorators))
	decorators = append(decorators, st.Decorators...)
	decorators = append(decorators, component.Decorators...)
	decorators = append(decorators, project.Decorators...)

	pipeline, err := decorate.Build(st.Render, decorators)
	if err != nil {
		return Composed[R]{}, err
	}

	viewMode := st.ViewMode
	if viewMode == "" {
		viewMode = story.ViewStory
	}

	return Composed[R]{
		Pipeline: pipeline,
		Initial: story.Context{
			ID:         ToID(component.Title, st.Name),
			Title:      component.Title,
			Name:       st.Name,
			ViewMode:   viewMode,
			Parameters: CombineParameters(project.Parameters, component.Parameters, st.Parameters),
			Args:       CombineParameters(project.Args, component.Args, st.Args),
			Globals:    maps.Clone(project.Globals),
		},
	}, nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// ToID derives the canonical story id from a component title and story
// name: both parts are lowercased, runs of non-alphanumeric characters
// collapse to "-", and the parts join with "--".
func ToID(title, name string) string {
	return sanitize(title) + "--" + sanitize(name)
}

func sanitize(s string) string {
	slug := nonSlug.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}
