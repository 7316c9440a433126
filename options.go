package draglook

import (
	"go.uber.org/zap"
)

type Option func(*Controls)

func WithLogger(l *zap.Logger) Option {
	return func(c *Controls) {
		c.logger = l
	}
}
