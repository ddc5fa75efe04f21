package cave

const panicNilSource = "cave: WithSource: source must not be nil"

// engineConfig holds Engine knobs; defaults come from newEngineConfig.
type engineConfig struct {
	seed uint64 // 0 ⇒ time-derived
	src  Source // overrides seed when non-nil
}

// Option customizes an Engine. Later options override earlier ones.
type Option func(*engineConfig)

// WithSeed fixes the initialization stream. 0 keeps the time-derived default.
func WithSeed(seed uint64) Option {
	return func(c *engineConfig) {
		c.seed = seed
		c.src = nil
	}
}

// WithSource makes the Engine draw from src. Panics on nil (programmer error).
func WithSource(src Source) Option {
	if src == nil {
		panic(panicNilSource)
	}
	return func(c *engineConfig) {
		c.src = src
	}
}

func newEngineConfig(opts ...Option) engineConfig {
	var cfg engineConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = NewSource(cfg.seed)
	}
	return cfg
}
