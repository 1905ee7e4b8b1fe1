package options

import "fmt"

// Option configures a value of type T at construction time.
type Option[T any] interface {
	apply(T) error
	name() string
}

// Func is an Option backed by a function. The name identifies the option
// in errors returned by Apply.
type Func[T any] struct {
	label string
	fn    func(T) error
}

func (f *Func[T]) apply(target T) error { return f.fn(target) }

func (f *Func[T]) name() string { return f.label }

// New creates a named option from a function that may reject its input.
func New[T any](name string, fn func(T) error) *Func[T] {
	return &Func[T]{label: name, fn: fn}
}

// NoError creates a named option from a function that cannot fail.
func NoError[T any](name string, fn func(T)) *Func[T] {
	return &Func[T]{label: name, fn: func(target T) error {
		fn(target)
		return nil
	}}
}

// Apply applies opts to target in order and stops at the first failure.
// Nil options are skipped. The returned error names the failing option and
// wraps its error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return fmt.Errorf("option %s: %w", opt.name(), err)
		}
	}

	return nil
}
