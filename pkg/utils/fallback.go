package utils

import "errors"

// FallbackPolicy decides whether a primary failure should be retried with the secondary attempt.
type FallbackPolicy func(err error) bool

// Fallback runs primary and, if it fails and shouldFallback allows it, runs
// secondary exactly once. The attempts are expected to differ in request shape,
// so there is no delay between them.
//
// The returned error is the secondary's error, or the primary's one when the
// secondary was not attempted.
func Fallback(primary, secondary func() error, shouldFallback FallbackPolicy) error {
	err := primary()
	if err == nil {
		return nil
	}
	if shouldFallback != nil && !shouldFallback(err) {
		return err
	}
	return secondary()
}

// Always falls back on any primary error.
func Always(error) bool { return true }

// On falls back only when the primary error matches one of targets.
func On(targets ...error) FallbackPolicy {
	return func(err error) bool {
		for _, target := range targets {
			if errors.Is(err, target) {
				return true
			}
		}
		return false
	}
}
