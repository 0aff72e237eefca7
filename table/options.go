package table

import "github.com/arloliu/rzero/internal/options"

type writeConfig struct {
	index  bool
	indent string
}

func defaultWriteConfig() *writeConfig {
	return &writeConfig{index: true, indent: "  "}
}

// Option configures the writers.
type Option = options.Option[*writeConfig]

// WithIndex toggles the leading row-index column of the CSV layout.
func WithIndex(enabled bool) Option {
	return options.NoError(func(c *writeConfig) {
		c.index = enabled
	})
}

// WithIndent sets the JSON indent. An empty indent writes compact JSON.
func WithIndent(indent string) Option {
	return options.NoError(func(c *writeConfig) {
		c.indent = indent
	})
}
