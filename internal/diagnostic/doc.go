// Package diagnostic provides structured warnings, errors, and
// classification events for the animation mapper.
//
// Key capabilities:
//   - Unmatched clip reports
//   - Reversed clips dropped for lacking a family prefix
//   - Overwritten mapping entries
//   - Table validation errors and dangling successor warnings
//
// The core pipeline never prints. It emits events to a Reporter, and
// callers decide whether to collect, print, or discard them.
package diagnostic
