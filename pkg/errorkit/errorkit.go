// Package errorkit contains the small set of error helpers the iterutil packages build on.
//
// Sentinel errors are declared as constants of Error,
// and errors collected from several release paths are combined with Merge.
package errorkit

// Finish is a helper function that can be used from a deferred context.
//
// Usage:
//
//	defer errorkit.Finish(&returnError, itr.Close)
func Finish(returnErr *error, blk func() error) {
	*returnErr = Merge(*returnErr, blk())
}
