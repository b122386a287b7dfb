package mexce

import "github.com/xyproto/env/v2"

// Config holds process-wide tunables for a compiler instance. Defaults are
// read from the environment rather than from flags or a config file, since
// the core has no CLI of its own - only the external benchmark drivers do,
// and they are out of scope here.
type Config struct {
	// Verbose traces every emitted opcode and every optimizer/constant-
	// folding decision to os.Stderr.
	Verbose bool
	// PageSizeHint sets a minimum executable-page allocation size; code
	// larger than the hint is allocated at its own size. Either way the
	// allocator rounds up to whole host pages, so 0 means "just the code,
	// rounded up to one host page".
	PageSizeHint int
}

func defaultConfig() Config {
	return Config{
		Verbose:      env.Bool("MEXCE_VERBOSE"),
		PageSizeHint: env.Int("MEXCE_PAGE_SIZE", 0),
	}
}

// Option configures an Evaluator at construction time.
type Option func(*Config)

// WithVerbose enables or disables opcode/optimizer tracing to os.Stderr.
func WithVerbose(v bool) Option {
	return func(c *Config) { c.Verbose = v }
}

// WithPageSizeHint overrides the executable-page allocation size hint.
func WithPageSizeHint(n int) Option {
	return func(c *Config) { c.PageSizeHint = n }
}
