package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader reads prefixed environment variables into a nested tree.
// A double underscore in the variable name descends one level:
// APP_DATABASE__DRIVER=sqlite3 becomes database.driver.
type EnvLoader struct {
	prefix string
}

func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{prefix: prefix}
}

func (l *EnvLoader) Load() (map[string]any, error) {
	tree := make(map[string]any)

	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}

		name, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		key := strings.ToLower(strings.TrimPrefix(name, l.prefix))
		key = strings.ReplaceAll(key, "__", ".")
		setNested(tree, key, coerce(value))
	}

	return tree, nil
}

func coerce(value string) any {
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

func setNested(tree map[string]any, key string, value any) {
	parts := strings.Split(key, ".")
	current := tree
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value
			return
		}
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
}
