// ABOUTME: Sentinel errors for the puzzle package
// ABOUTME: Parse failures wrap these sentinels via %w; open/read failures wrap the os error

package puzzle

import "errors"

// ErrMalformedLine indicates a piece database line did not parse as
// "id top right bottom left".
var ErrMalformedLine = errors.New("puzzle: malformed piece database line")

// ErrCountMismatch indicates the piece database did not contain exactly N²
// entries for the requested board size N.
var ErrCountMismatch = errors.New("puzzle: piece count does not match board_size^2")
