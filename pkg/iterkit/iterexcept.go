package iterkit

import (
	"errors"

	"go.llib.dev/iterutil/port/option"
)

// IterExcept returns an iterator which calls the producer until it reports a designated failure.
//
// The designated failure is Done, unless Except or ExceptFunc says otherwise.
// Any other error from the producer is reported by Err without ending the iteration,
// so the next Next call tries the producer again.
//
// With the Fallback option, the fallback is called exactly once when the designated failure occurs,
// and its result becomes the last value of the iteration.
//
// Nothing is called at construction.
func IterExcept[T any](producer func() (T, error), opts ...IterExceptOption[T]) (*IterExceptIter[T], error) {
	if producer == nil {
		return nil, ErrInvalidArgument.F("IterExcept: nil producer")
	}
	c := option.Use[IterExceptConfig[T]](opts)
	return &IterExceptIter[T]{
		producer:   producer,
		first:      c.First,
		fallback:   c.Fallback,
		designated: c.isDesignated,
	}, nil
}

type IterExceptConfig[T any] struct {
	// Except lists the errors which count as the designated failure.
	// They are matched with errors.Is.
	Except []error
	// ExceptFunc reports whether an error counts as the designated failure.
	ExceptFunc func(error) bool
	// Fallback is called once, when the designated failure first occurs.
	Fallback func() (T, error)
	// First is called once, before the producer is called for the first time.
	First func() (T, error)
}

func (c IterExceptConfig[T]) Configure(t *IterExceptConfig[T]) {
	t.Except = append(t.Except, c.Except...)
	if c.ExceptFunc != nil {
		t.ExceptFunc = c.ExceptFunc
	}
	if c.Fallback != nil {
		t.Fallback = c.Fallback
	}
	if c.First != nil {
		t.First = c.First
	}
}

func (c IterExceptConfig[T]) isDesignated(err error) bool {
	if len(c.Except) == 0 && c.ExceptFunc == nil {
		return errors.Is(err, Done)
	}
	for _, target := range c.Except {
		if errors.Is(err, target) {
			return true
		}
	}
	return c.ExceptFunc != nil && c.ExceptFunc(err)
}

type IterExceptOption[T any] option.Option[IterExceptConfig[T]]

// Except sets the errors which count as the designated failure.
// Repeated use adds to the list.
func Except[T any](targets ...error) IterExceptOption[T] {
	return option.Func[IterExceptConfig[T]](func(c *IterExceptConfig[T]) {
		for _, target := range targets {
			if target != nil {
				c.Except = append(c.Except, target)
			}
		}
	})
}

// ExceptFunc sets a predicate which tells if an error counts as the designated failure.
// It is checked in addition to the Except targets.
func ExceptFunc[T any](fn func(error) bool) IterExceptOption[T] {
	return option.Func[IterExceptConfig[T]](func(c *IterExceptConfig[T]) {
		c.ExceptFunc = fn
	})
}

// Fallback sets the function that gives the last value when the designated failure occurs.
func Fallback[T any](fn func() (T, error)) IterExceptOption[T] {
	return option.Func[IterExceptConfig[T]](func(c *IterExceptConfig[T]) {
		c.Fallback = fn
	})
}

// First sets a function that gives the first value, before the producer is ever called.
// A designated failure from it ends the iteration the same way as one from the producer.
func First[T any](fn func() (T, error)) IterExceptOption[T] {
	return option.Func[IterExceptConfig[T]](func(c *IterExceptConfig[T]) {
		c.First = fn
	})
}

// IterExceptIter is the PullIter returned by IterExcept.
//
// Once it is terminated, Next returns false forever,
// and neither the producer nor the fallback is called again.
// IterExceptIter is not safe for concurrent use.
type IterExceptIter[T any] struct {
	producer   func() (T, error)
	first      func() (T, error)
	fallback   func() (T, error)
	designated func(error) bool

	terminated bool
	value      T
	err        error
}

func (i *IterExceptIter[T]) Next() bool {
	var zero T
	i.value, i.err = zero, nil
	if i.terminated {
		return false
	}
	v, err := i.produce()
	switch {
	case err == nil:
		i.value = v
		return true
	case i.designated(err):
		return i.terminate()
	default:
		i.err = err
		return false
	}
}

func (i *IterExceptIter[T]) produce() (T, error) {
	if i.first == nil {
		return i.producer()
	}
	v, err := i.first()
	if err == nil || i.designated(err) {
		i.first = nil
	}
	return v, err
}

func (i *IterExceptIter[T]) terminate() bool {
	fallback := i.fallback
	i.release()
	if fallback == nil {
		return false
	}
	v, err := fallback()
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *IterExceptIter[T]) release() {
	i.terminated = true
	i.producer = nil
	i.first = nil
	i.fallback = nil
	i.designated = nil
}

func (i *IterExceptIter[T]) Value() T {
	return i.value
}

// Err reports the error of the most recent Next call.
// A nil Err after a false Next means the iterator is exhausted.
func (i *IterExceptIter[T]) Err() error {
	return i.err
}

// Close terminates the iterator without calling the fallback.
func (i *IterExceptIter[T]) Close() error {
	i.release()
	return nil
}

// Terminated reports whether the designated failure was already observed, or the iterator was closed.
func (i *IterExceptIter[T]) Terminated() bool {
	return i.terminated
}

// LengthHint always reports zero, since the number of values a producer can give is unknown.
func (i *IterExceptIter[T]) LengthHint() int {
	return 0
}

// Seq bridges the iterator into a range-over-func loop.
//
// Values are yielded with a nil error.
// An error from the producer or the fallback is yielded with the zero value,
// and the iteration goes on, so it is up to the loop to stop on errors it can't recover from.
func (i *IterExceptIter[T]) Seq() SingleUseSeqE[T] {
	return func(yield func(T, error) bool) {
		for {
			if i.Next() {
				if !yield(i.Value(), nil) {
					return
				}
				continue
			}
			err := i.Err()
			if err == nil {
				return
			}
			var zero T
			if !yield(zero, err) {
				return
			}
		}
	}
}
