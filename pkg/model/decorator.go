package model

// Decorator adjusts an option spec before the host stores it.
type Decorator interface {
	Decorate(key string, spec *OptionSpec) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(key string, spec *OptionSpec) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(key string, spec *OptionSpec) error {
	return fn(key, spec)
}
