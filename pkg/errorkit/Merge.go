package errorkit

import "strings"

// Merge will combine all given non nil error values into a single error value.
// If no valid error is given, nil is returned.
// If only a single non nil error value is given, the error value is returned as is.
func Merge(errs ...error) error {
	var merged multiError
	for _, err := range errs {
		if err == nil {
			continue
		}
		merged = append(merged, err)
	}
	switch len(merged) {
	case 0:
		return nil
	case 1:
		return merged[0]
	default:
		return merged
	}
}

type multiError []error

func (errs multiError) Error() string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

func (errs multiError) Unwrap() []error { return errs }
