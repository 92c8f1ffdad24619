// ABOUTME: Sentinel errors for the builder package
// ABOUTME: Surfaced to the driver; indicates a piece-set too sparse for the board size

package builder

import "errors"

// ErrUnbuildableBoard is returned when the inventory runs out of the
// required piece Kind before every slot of a board is filled. It indicates
// a mismatch between the piece database and the requested board size, not a
// transient condition — the driver is responsible for ensuring the
// inventory it hands to Build is refilled and sized correctly.
var ErrUnbuildableBoard = errors.New("builder: inventory exhausted before board was filled")
