package iterkit

// Slice returns a PullIter over the values of the slice.
// It knows how many values are left, thus it reports an exact length hint.
func Slice[T any](vs []T) *SliceIter[T] {
	return &SliceIter[T]{values: vs}
}

type SliceIter[T any] struct {
	values []T
	index  int
	value  T
	closed bool
}

func (i *SliceIter[T]) Next() bool {
	if i.closed || len(i.values) <= i.index {
		return false
	}
	i.value = i.values[i.index]
	i.index++
	return true
}

func (i *SliceIter[T]) Value() T { return i.value }

func (i *SliceIter[T]) Err() error { return nil }

func (i *SliceIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *SliceIter[T]) LengthHint() int {
	if i.closed {
		return 0
	}
	return len(i.values) - i.index
}
