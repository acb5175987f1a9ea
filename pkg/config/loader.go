package config

// Loader produces a raw configuration tree from some source.
type Loader interface {
	Load() (map[string]any, error)
}

// ChainLoader merges the trees of several loaders; later loaders override
// earlier ones. A loader that fails to produce anything is skipped, but at
// least one source must load.
type ChainLoader struct {
	loaders []Loader
}

func NewChainLoader(loaders ...Loader) *ChainLoader {
	return &ChainLoader{loaders: loaders}
}

func (c *ChainLoader) Load() (map[string]any, error) {
	merged := make(map[string]any)
	var lastErr error
	loaded := false

	for _, loader := range c.loaders {
		tree, err := loader.Load()
		if err != nil {
			lastErr = err
			continue
		}
		mergeTree(merged, tree)
		loaded = true
	}

	if !loaded {
		return nil, ErrNoConfigSource.WithCause(lastErr)
	}
	return merged, nil
}

func mergeTree(dst, src map[string]any) {
	for key, value := range src {
		srcSub, srcIsMap := value.(map[string]any)
		if srcIsMap {
			if dstSub, ok := dst[key].(map[string]any); ok {
				mergeTree(dstSub, srcSub)
				continue
			}
		}
		dst[key] = value
	}
}
