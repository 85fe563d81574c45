package story

import "maps"

// ViewMode selects how a story is presented.
type ViewMode string

const (
	ViewStory ViewMode = "story"
	ViewDocs  ViewMode = "docs"
)

// Context is the value threaded through a decorator chain down to the
// render function.
//
// ID, Title, Name, ViewMode and Parameters are core fields: they are fixed
// when an invocation starts and Merge never applies them from an update, so
// a decorator cannot rename a story or rewrite its declared parameter set
// mid-chain. Args, Globals and Extra are extension fields: decorators extend
// them additively on the way down to the render function.
type Context struct {
	ID         string
	Title      string
	Name       string
	ViewMode   ViewMode
	Parameters map[string]any

	Args    map[string]any
	Globals map[string]any
	Extra   map[string]any
}

// Merge combines base with a partial update and returns the result.
// A nil update returns base unchanged. Core fields carried by the update
// are stripped, never applied.
//
// The merge is shallow at top-level-field granularity: a non-nil update.Args
// or update.Globals replaces the corresponding base map wholesale, while
// update.Extra overlays key by key (each Extra key stands for one top-level
// context field of its own). Fields absent from the update keep their prior
// values. Merge never mutates base or the update; replaced and overlaid maps
// are cloned.
func Merge(base Context, update *Context) Context {
	if update == nil {
		return base
	}

	merged := base
	if update.Args != nil {
		merged.Args = maps.Clone(update.Args)
	}
	if update.Globals != nil {
		merged.Globals = maps.Clone(update.Globals)
	}
	if len(update.Extra) > 0 {
		extra := make(map[string]any, len(base.Extra)+len(update.Extra))
		maps.Copy(extra, base.Extra)
		maps.Copy(extra, update.Extra)
		merged.Extra = extra
	}
	return merged
}
