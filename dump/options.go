package dump

// Config defines configuration for a field dump.
type Config struct {
	FieldType FieldType
	DirPath   string // output directory; empty means a fresh temp directory
	Prefix    string // file name prefix for dump output
	Viewer    string // external visualization executable
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults: an E-field dump with the
// solver's conventional time-domain prefix, viewed with paraview.
func DefaultConfig() Config {
	return Config{
		FieldType: FieldE,
		Prefix:    "Et_",
		Viewer:    "paraview",
	}
}

// WithFieldType sets the recorded field quantity.
func WithFieldType(ft FieldType) Option {
	return func(cfg *Config) {
		cfg.FieldType = ft
	}
}

// WithDirPath sets the output directory instead of a temp directory.
func WithDirPath(dir string) Option {
	return func(cfg *Config) {
		if dir != "" {
			cfg.DirPath = dir
		}
	}
}

// WithPrefix sets the dump file name prefix.
func WithPrefix(prefix string) Option {
	return func(cfg *Config) {
		if prefix != "" {
			cfg.Prefix = prefix
		}
	}
}

// WithViewer sets the visualization executable launched by View.
func WithViewer(viewer string) Option {
	return func(cfg *Config) {
		if viewer != "" {
			cfg.Viewer = viewer
		}
	}
}

func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
