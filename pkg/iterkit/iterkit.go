// Package iterkit provides lazy iterator adapters on top of the standard iter package.
//
// # Summary
//
// An Iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// The adapters in this package wrap a source, and present its values in a different shape,
// while only pulling as much from the source as the consumer asks for.
//
// Successive presents a sequence as fixed-size sliding windows.
// IterExcept turns a producer function into an iterator,
// which ends when the producer reports a designated failure.
//
// Every adapter is a PullIter, and can be bridged into a range-over-func loop with its Seq method.
// Adapters are not safe for concurrent use,
// a single consumer is expected to advance them with sequential Next calls.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package iterkit

import "iter"

// SeqE is an iterator sequence that can tell if a currently returned value has an issue or not.
type SeqE[T any] = iter.Seq2[T, error]

// SingleUseSeqE is a SeqE that can only be iterated once.
// After iteration, it is expected to yield no more values.
//
// Most sequences walk the whole data again on every range loop.
// Single-use sequences report values from a stream that can't be rewound,
// calling them again after the stream is finished yields nothing.
type SingleUseSeqE[T any] = SeqE[T]

// AsSeqE turns an iter.Seq[T] into a SeqE[T] which never reports an error.
func AsSeqE[T any](i iter.Seq[T]) SeqE[T] {
	if i == nil {
		return nil
	}
	return func(yield func(T, error) bool) {
		for v := range i {
			if !yield(v, nil) {
				return
			}
		}
	}
}

func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

// CollectE collects the values of a SeqE until the first error.
func CollectE[T any](i SeqE[T]) ([]T, error) {
	if i == nil {
		return nil, nil
	}
	var vs = make([]T, 0)
	for v, err := range i {
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func FromPull[T any](next func() (T, bool), stops ...func()) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, stop := range stops {
			defer stop()
		}
		for {
			v, ok := next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
	}
}
