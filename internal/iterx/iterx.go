package iterx

import (
	"iter"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// Backward yields the items of in from last to first.
func Backward[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(in) - 1; i >= 0; i-- {
			if !yield(in[i]) {
				break
			}
		}
	}
}

// Pull turns a fallible push iterator into a pull iterator.
//
// The error returned by run is only meaningful once next has reported
// false; until then errFn returns nil. stop must be called if the caller
// abandons the iteration before next reports false.
func Pull[T any](run func(yield func(T) bool) error) (next func() (T, bool), stop func(), errFn func() error) {
	var err error
	next, stop = iter.Pull(func(yield func(T) bool) {
		err = run(yield)
	})
	return next, stop, func() error { return err }
}
