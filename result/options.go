package result

import (
	"go.uber.org/zap"
)

// Option configures BindAsync, Then and Run.
type Option func(*config)

type config struct {
	isFatal func(error) bool
	logger  *zap.Logger
}

func newConfig(opts []Option) *config {
	c := &config{
		isFatal: DefaultIsFatal,
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}

	return c
}

// WithFatal replaces DefaultIsFatal. Faults for which isFatal reports true
// are propagated instead of being captured as error.FromException.
func WithFatal(isFatal func(error) bool) Option {
	return func(c *config) {
		if isFatal != nil {
			c.isFatal = isFatal
		}
	}
}

// WithLogger logs captured faults at debug level and fatal faults at warn level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
