// Package room renders room designs.
//
// # Layout
//
// Each room is rendered as a title ("Ion Cannon Lv1 [ION]"), its
// description and an ordered list of properties. Property labels depend on
// the room type and are read from the embedded display_names.yaml: a type
// specific label overrides the default, and a null label hides the line for
// that type (shields have "Shield points" instead of "Max storage", lifts
// show no storage at all). Some properties only apply to a fixed set of
// types, such as the per tick capacity of lifts, radars and cloaking
// devices.
//
// Values come from transforms over the flat design record. A transform
// that cannot produce a value (missing field, zero, malformed number)
// hides its line.
//
// # Ordering
//
// Search results are ordered along upgrade chains: the sort key of a room
// is the zero-padded ids from the first level down to the room itself, so
// every level directly follows the one it upgrades from.
//
// # Cross references
//
// Build requirements point at item designs ("item:76x3"), so each query
// fetches room and item designs concurrently.
package room
