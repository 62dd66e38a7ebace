package iterkit

import (
	"iter"
)

// Successive returns an iterator over the sliding windows of the given sequence.
// Every window holds n successive values, ordered from the oldest to the newest.
//
//	[1 2 3 4 5] with n=2 -> [1 2] [2 3] [3 4] [4 5]
//
// A sequence shorter than n yields no window at all.
// The sequence is converted into pull form at construction,
// but no value is taken from it until the first Next call.
func Successive[T any](i iter.Seq[T], n int) (*SuccessiveIter[T], error) {
	if i == nil {
		return nil, ErrInvalidArgument.F("Successive: nil iter.Seq")
	}
	return SuccessiveE(AsSeqE(i), n)
}

// SuccessiveE is the SeqE variant of Successive.
// The error of the sequence is reported by Err, and since a SeqE ends at its first error,
// the iteration ends there.
func SuccessiveE[T any](i SeqE[T], n int) (*SuccessiveIter[T], error) {
	if i == nil {
		return nil, ErrInvalidArgument.F("Successive: nil iterator sequence")
	}
	if err := checkWindowSize(n); err != nil {
		return nil, err
	}
	return newSuccessive(ToPullIter(i), n), nil
}

// SuccessivePull is the PullIter variant of Successive.
// The returned iterator takes ownership of the source, and closes it when it is done.
// When the source implements LengthHinter, its estimate is used for the length hint of the windows.
func SuccessivePull[T any](src PullIter[T], n int) (*SuccessiveIter[T], error) {
	if src == nil {
		return nil, ErrInvalidArgument.F("Successive: nil PullIter")
	}
	if err := checkWindowSize(n); err != nil {
		return nil, err
	}
	return newSuccessive(src, n), nil
}

func checkWindowSize(n int) error {
	if n < 1 {
		return ErrInvalidArgument.F("Successive: window size must be at least 1, got %d", n)
	}
	return nil
}

func newSuccessive[T any](src PullIter[T], n int) *SuccessiveIter[T] {
	return &SuccessiveIter[T]{
		src:  src,
		size: n,
		ring: make([]T, 0, min(n, 64)),
	}
}

// SuccessiveIter is a PullIter that yields the sliding windows of its source.
//
// Each Value call returns a fresh copy of the current window,
// so windows handed out earlier are never affected by later steps.
//
// An error from the source is reported by Err, but it doesn't end the iteration:
// the values pulled so far are kept, and the next Next call pulls from the source again.
// The iteration ends when the source is exhausted without an error.
// SuccessiveIter is not safe for concurrent use.
type SuccessiveIter[T any] struct {
	src   PullIter[T]
	size  int
	state successiveState
	// ring holds the current window, head points to its oldest value.
	// It grows up to size while priming.
	ring []T
	head int
	err  error
}

type successiveState int

const (
	successiveUnprimed successiveState = iota
	successivePrimed
	successiveDone
)

func (i *SuccessiveIter[T]) Next() bool {
	i.err = nil
	switch i.state {
	case successiveUnprimed:
		return i.prime()
	case successivePrimed:
		return i.slide()
	default:
		return false
	}
}

func (i *SuccessiveIter[T]) prime() bool {
	for len(i.ring) < i.size {
		v, ok := i.pull()
		if !ok {
			return false
		}
		i.ring = append(i.ring, v)
	}
	i.head = 0
	i.state = successivePrimed
	return true
}

func (i *SuccessiveIter[T]) slide() bool {
	v, ok := i.pull()
	if !ok {
		return false
	}
	i.ring[i.head] = v
	i.head = (i.head + 1) % i.size
	return true
}

func (i *SuccessiveIter[T]) pull() (T, bool) {
	var zero T
	if i.src.Next() {
		return i.src.Value(), true
	}
	if err := i.src.Err(); err != nil {
		i.err = err
		return zero, false
	}
	i.finish()
	return zero, false
}

func (i *SuccessiveIter[T]) finish() {
	i.state = successiveDone
	i.ring = nil
	i.err = i.release()
}

func (i *SuccessiveIter[T]) release() error {
	if i.src == nil {
		return nil
	}
	src := i.src
	i.src = nil
	return src.Close()
}

// Value returns a copy of the current window.
// Before the first successful Next, and after the iteration ended, it returns nil.
func (i *SuccessiveIter[T]) Value() []T {
	if i.state != successivePrimed {
		return nil
	}
	window := make([]T, 0, i.size)
	window = append(window, i.ring[i.head:]...)
	window = append(window, i.ring[:i.head]...)
	return window
}

func (i *SuccessiveIter[T]) Err() error {
	return i.err
}

// Close releases the source.
// It is safe to call it multiple times.
func (i *SuccessiveIter[T]) Close() error {
	i.state = successiveDone
	i.ring = nil
	return i.release()
}

// Size returns the number of values in a window.
func (i *SuccessiveIter[T]) Size() int {
	return i.size
}

// LengthHint estimates how many windows are left.
// Before the first window, m values left in the source and k values already buffered
// are expected to give m+k-n+1 windows, afterwards every remaining source value gives one more window.
// A source without a length hint is counted as empty.
func (i *SuccessiveIter[T]) LengthHint() int {
	switch i.state {
	case successiveUnprimed:
		return max(0, LengthHint(i.src, 0)+len(i.ring)-i.size+1)
	case successivePrimed:
		return LengthHint(i.src, 0)
	default:
		return 0
	}
}

// Seq bridges the iterator into a range-over-func loop.
// The iterator is closed when the loop ends.
func (i *SuccessiveIter[T]) Seq() SingleUseSeqE[[]T] {
	return FromPullIter[[]T](i)
}
