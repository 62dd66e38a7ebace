// Package iterkitcontract holds the behavioural contracts of the iterkit role interfaces.
package iterkitcontract

import (
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/iterutil/pkg/iterkit"
	"go.llib.dev/iterutil/port/contract"
)

// PullIter checks the behaviour every finite iterkit.PullIter must have.
// The subject made by mk is expected to yield at least one value, then end without an error.
func PullIter[T any](mk contract.Make[iterkit.PullIter[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iterkit.PullIter[T] {
		itr := mk(t)
		t.Cleanup(func() { _ = itr.Close() })
		return itr
	})

	drain := func(t *testcase.T) []T {
		var vs []T
		for subject.Get(t).Next() {
			vs = append(vs, subject.Get(t).Value())
		}
		return vs
	}

	s.Then("values can be collected from the iterator", func(t *testcase.T) {
		assert.NotEmpty(t, drain(t))
		assert.NoError(t, subject.Get(t).Err())
	})

	s.Then("Value is repeatable without side effects", func(t *testcase.T) {
		itr := subject.Get(t)
		assert.True(t, itr.Next())
		assert.Equal(t, itr.Value(), itr.Value())
	})

	s.Then("once exhausted, it stays exhausted", func(t *testcase.T) {
		drain(t)
		t.Random.Repeat(2, 7, func() {
			assert.False(t, subject.Get(t).Next())
			assert.NoError(t, subject.Get(t).Err())
		})
	})

	s.Then("Close can be called multiple times", func(t *testcase.T) {
		assert.NoError(t, subject.Get(t).Close())
		assert.NoError(t, subject.Get(t).Close())
	})

	s.Then("after Close, no more value is yielded", func(t *testcase.T) {
		assert.NoError(t, subject.Get(t).Close())
		assert.False(t, subject.Get(t).Next())
	})

	s.Then("the length hint is never negative", func(t *testcase.T) {
		itr := subject.Get(t)
		assert.True(t, 0 <= iterkit.LengthHint(itr, 0))
		for itr.Next() {
			assert.True(t, 0 <= iterkit.LengthHint(itr, 0))
		}
		assert.Equal(t, 0, iterkit.LengthHint(itr, 0))
	})

	return s.AsSuite("PullIter")
}
