package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// YamlLoader loads the first readable path from its list.
type YamlLoader struct {
	paths []string
}

func NewYamlLoader(paths ...string) *YamlLoader {
	return &YamlLoader{paths: paths}
}

func (l *YamlLoader) Load() (map[string]any, error) {
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var tree map[string]any
		if err = yaml.UnmarshalWithOptions(data, &tree, yaml.UseJSONUnmarshaler()); err != nil {
			return nil, ErrParseYAML.
				WithDetail("path", path).
				WithDetail("reason", err.Error()).
				WithCause(err)
		}
		return tree, nil
	}

	return nil, ErrNoConfigSource
}
