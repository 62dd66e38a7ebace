package iterkit

import "go.llib.dev/iterutil/pkg/errorkit"

const (
	// ErrInvalidArgument is returned when an adapter is constructed with malformed parameters.
	ErrInvalidArgument errorkit.Error = "iterkit: invalid argument"

	// Done is the default designated failure of IterExcept.
	// A producer returns it to signal that it has intentionally run out of values.
	Done errorkit.Error = "iterkit: done"
)
