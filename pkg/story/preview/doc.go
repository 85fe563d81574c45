// Package preview loads project-level story settings from a preview.yaml
// file, with STORYBOOK_-prefixed environment variables layered on top and
// sensible defaults underneath. Settings are pure data; decorators and
// render functions register in code.
package preview
