package gomap

// MapOption is an option for controlling the mapping process from Go
// values to IR.
type MapOption interface {
	applyMap(*mapConfig)
}

type mapConfig struct {
	keepNulls bool
}

type mapOptionFunc func(*mapConfig)

func (f mapOptionFunc) applyMap(c *mapConfig) { f(c) }

// KeepNulls retains nil object fields and map entries as explicit null
// nodes instead of omitting them.
func KeepNulls() MapOption {
	return mapOptionFunc(func(c *mapConfig) { c.keepNulls = true })
}

func newMapConfig(opts ...MapOption) *mapConfig {
	cfg := &mapConfig{}
	for _, opt := range opts {
		opt.applyMap(cfg)
	}
	return cfg
}
