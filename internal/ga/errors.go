// ABOUTME: Sentinel error for settings validation
// ABOUTME: Construction-time only; a valid Settings never produces it mid-run

package ga

import "errors"

// ErrInvalidConfig is returned by Settings.Validate when a field fails its
// range or combinatorial check. The core assumes a validated Settings from
// here on and never re-checks these fields mid-run.
var ErrInvalidConfig = errors.New("ga: invalid settings")
