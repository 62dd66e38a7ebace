// Package option is the functional option helper used by the iterkit constructors.
package option

// Option changes a Config while a constructor assembles it.
// A Config type can be an Option of itself, then its non-zero fields are merged into the Config under construction.
type Option[Config any] interface {
	Configure(*Config)
}

// Func turns a plain function into an Option, this is how the iterkit option constructors are written.
type Func[Config any] func(*Config)

func (fn Func[Config]) Configure(c *Config) { fn(c) }

// Use applies the options on a zero Config, in the order they are given.
// When *Config has an Init method, it sets the defaults before any option is applied.
func Use[Config any, Opt Option[Config]](opts []Opt) Config {
	var c Config
	if d, ok := any(&c).(defaulter); ok {
		d.Init()
	}
	for _, opt := range opts {
		opt.Configure(&c)
	}
	return c
}

type defaulter interface {
	Init()
}
