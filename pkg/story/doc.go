// Package story defines the story context threaded through a decorator
// chain and the capability signatures the chain composes.
//
// A Context is split into two zones: core fields (identity, title, name,
// view mode, and the author-declared parameter set) are fixed when an
// invocation starts, while extension fields (args, globals, and arbitrary
// extra fields) accumulate additively as decorators contribute updates.
//
// Key pieces:
// - Context: the value observed by every decorator and the render function
// - Merge: pure shallow merge that strips core fields from an update
// - RenderFunc, NextFunc, Decorator: the function shapes composed by decorate.Build
package story
