// ABOUTME: Sentinel errors for the inventory package
// ABOUTME: The builder translates it into builder.ErrUnbuildableBoard

package inventory

import "errors"

// ErrInventoryEmpty is returned when a TakeRandom call finds no piece of
// the requested kind left. The builder abandons the build and returns
// builder.ErrUnbuildableBoard instead, so this error itself never reaches a
// caller of ga.Run.
var ErrInventoryEmpty = errors.New("inventory: no piece of requested kind remains")
