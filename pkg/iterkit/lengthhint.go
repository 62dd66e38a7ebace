package iterkit

// LengthHinter is implemented by iterators which can estimate how many values they still have.
// The estimate is advisory, it can be used to pre-size buffers,
// but it must not be treated as the exact number of the remaining values.
type LengthHinter interface {
	LengthHint() int
}

// LengthHint returns the estimated remaining length of v.
// When v can't tell, or it reports a negative number, def is returned.
func LengthHint(v any, def int) int {
	h, ok := v.(LengthHinter)
	if !ok {
		return def
	}
	if n := h.LengthHint(); 0 <= n {
		return n
	}
	return def
}
