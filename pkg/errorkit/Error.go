package errorkit

import "fmt"

// Error is an implementation for the error interface that allow you to declare exported globals with the `const` keyword.
//
//	TL;DR:
//	  const ErrSomething errorkit.Error = "something is an error"
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

// Wrap bundles a cause together with this Error.
// The returned value matches both of them with errors.Is and errors.As.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return &wrapped{kind: err, cause: cause}
}

// F will format a detail message and wrap it with the Error.
func (err Error) F(format string, a ...any) error {
	return err.Wrap(fmt.Errorf(format, a...))
}

type wrapped struct {
	kind  Error
	cause error // never nil
}

func (w *wrapped) Error() string {
	return fmt.Sprintf("[%s] %s", w.kind, w.cause.Error())
}

func (w *wrapped) Unwrap() []error {
	return []error{w.kind, w.cause}
}
