// ABOUTME: Sentinel errors for the board package
// ABOUTME: Callers branch on these with errors.Is, never on formatted strings

package board

import "errors"

// ErrInvariantViolation indicates a debug-only invariant check failed.
// It is only ever raised when Debug is true; production runs never pay for
// the scan that would produce it. See CheckInvariants.
var ErrInvariantViolation = errors.New("board: invariant violation")
