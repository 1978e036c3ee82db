package vocab

import (
	"github.com/goliatone/go-lexbool/koanf/solvers"
	"github.com/goliatone/go-lexbool/logger"
)

type Option func(c *Container)

func WithValidation(v bool) Option {
	return func(c *Container) {
		c.mustValidate = v
	}
}

func WithDefinitionPath(p string) Option {
	return func(c *Container) {
		c.definitionPath = p
	}
}

func WithoutDefaultDefinitionPath() Option {
	return WithDefinitionPath("")
}

func WithSolver(srcs ...solvers.ConfigSolver) Option {
	return func(c *Container) {
		c.solvers = append(c.solvers, srcs...)
	}
}

func WithProvider(factories ...ProviderBuilder) Option {
	return func(c *Container) {
		for _, factory := range factories {
			if factory != nil {
				c.loaders = append(c.loaders, factory)
			}
		}
	}
}

func WithLogger(logger logger.Logger) Option {
	return func(c *Container) {
		c.logger = logger
	}
}

func WithDelimiter(delim string) Option {
	return func(c *Container) {
		if delim != "" {
			c.delimiter = delim
		}
	}
}
