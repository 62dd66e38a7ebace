// Package contract declares the shape of the reusable behavioural test suites.
package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make func meant to create a new instance of the testing subject.
// It is called for every test case of a contract, so each case gets a fresh subject.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract is a reusable behavioural specification.
//
// A contract describes what a consumer expects from a role interface,
// so every supplier implementation can be checked against the same expectations.
type Contract interface {
	testcase.Suite
	// Test runs the contract as a test.
	Test(*testing.T)
	// Benchmark runs the contract as a benchmark.
	Benchmark(*testing.B)
}
