// Package compose assembles a renderable story from three annotation
// levels: project-wide defaults, component annotations, and the story
// itself.
//
// Parameters and args combine shallowly with story-level values winning
// over component values, and component values over project values.
// Decorators concatenate story-first, so after decorate.Build folds the
// chain the project-level decorators sit outermost and execute first.
//
// Key operations:
// - CombineParameters: shallow overwrite-by-key across annotation levels
// - ComposeStory: produce a built pipeline plus the canonical initial context
// - ToID: derive the canonical story id from a title and story name
package compose
