package iterkit_test

import (
	"iter"
	"slices"

	"go.llib.dev/testcase/random"

	"go.llib.dev/iterutil/pkg/iterkit"
)

var rnd = random.New(random.CryptoSeed{})

func sliceSeq[T any](vs []T) iter.Seq[T] {
	return slices.Values(vs)
}

// closeSpy counts how many times the wrapped PullIter was closed.
type closeSpy[T any] struct {
	iterkit.PullIter[T]
	Closed   int
	CloseErr error
}

func (spy *closeSpy[T]) Close() error {
	spy.Closed++
	if err := spy.PullIter.Close(); err != nil {
		return err
	}
	return spy.CloseErr
}

// producerStub yields Values one by one, then returns Final as its error forever.
type producerStub[T any] struct {
	Values []T
	Final  error
	Calls  int
}

func (p *producerStub[T]) Produce() (T, error) {
	p.Calls++
	if len(p.Values) == 0 {
		var zero T
		return zero, p.Final
	}
	v := p.Values[0]
	p.Values = p.Values[1:]
	return v, nil
}
