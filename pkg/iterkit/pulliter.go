package iterkit

import (
	"io"
	"iter"

	"go.llib.dev/iterutil/pkg/errorkit"
)

// PullIter define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
//
// A false Next means the iterator is either exhausted, or it failed.
// The two are told apart by Err, which only reports on the most recent Next call.
type PullIter[V any] interface {
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
}

// ToPullIter converts a SeqE into a PullIter.
// The sequence is converted into pull form immediately,
// and the first error it yields ends the iteration.
func ToPullIter[T any](itr SeqE[T]) PullIter[T] {
	next, stop := iter.Pull2(itr)
	return &pullIter[T]{next: next, stop: stop}
}

// FromPullIter bridges a PullIter into a range-over-func loop.
// Values are yielded as they come, then the iterator's error and close error, if any.
// The PullIter is closed when the iteration ends.
func FromPullIter[T any](itr PullIter[T]) SingleUseSeqE[T] {
	return func(yield func(T, error) bool) {
		defer itr.Close()
		for itr.Next() {
			if !yield(itr.Value(), nil) {
				return
			}
		}
		var zero T
		if err := itr.Err(); err != nil {
			if !yield(zero, err) {
				return
			}
		}
		if err := itr.Close(); err != nil {
			yield(zero, err)
		}
	}
}

func CollectPullIter[T any](itr PullIter[T]) (_ []T, rErr error) {
	if itr == nil {
		return nil, nil
	}
	defer errorkit.Finish(&rErr, itr.Close)
	var vs []T
	for itr.Next() {
		vs = append(vs, itr.Value())
	}
	return vs, itr.Err()
}

type pullIter[T any] struct {
	next  func() (T, error, bool)
	stop  func()
	value T
	err   error
	done  bool
}

func (i *pullIter[T]) Next() bool {
	if i.done {
		return false
	}
	v, err, ok := i.next()
	if !ok {
		return i.finish(nil)
	}
	if err != nil {
		return i.finish(err)
	}
	i.value = v
	return true
}

func (i *pullIter[T]) finish(err error) bool {
	var zero T
	i.value = zero
	i.err = err
	_ = i.Close()
	return false
}

func (i *pullIter[T]) Close() error {
	if i.done {
		return nil
	}
	i.done = true
	i.stop()
	return nil
}

func (i *pullIter[T]) Err() error {
	return i.err
}

func (i *pullIter[T]) Value() T {
	return i.value
}
