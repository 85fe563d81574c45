package preview

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultPath is where Load looks when given an empty path.
const DefaultPath = "preview.yaml"

// Settings holds the project-level annotations shared by every story.
type Settings struct {
	// Globals seed story.Context.Globals for every invocation.
	Globals map[string]any `koanf:"globals"`
	// Parameters are the project level of compose.CombineParameters.
	Parameters map[string]any `koanf:"parameters"`
	// Layout is the default layout parameter when none is declared.
	Layout string `koanf:"layout"`
}

// Load reads settings from the given YAML file, then layers STORYBOOK_
// environment variables on top (STORYBOOK_GLOBALS__THEME=dark sets
// globals.theme) and fills defaults. A missing file is not an error; env
// and defaults still apply.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = DefaultPath
	}

	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("STORYBOOK_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "STORYBOOK_")), "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	if !k.Exists("layout") {
		k.Set("layout", "padded")
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
