// Package motion animates scalar values toward targets for per-frame rendering.
//
// Channels:
//   - Spring: physically modelled motion toward a target that may change at any time
//   - Loop: a fixed-period keyframe cycle, independent of any target
//   - Tween: a one-shot eased move with a completion edge
//
// Every channel is stepped with the elapsed frame time and never blocks.
// Channels that drive the same element are combined only at render time
// (see Transform), so retargeting one never resets another's phase.
package motion
