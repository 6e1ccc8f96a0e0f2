// Package gen renders a mapping plan into the declarative table formats
// read by animation players.
//
// Generation approach uses text/template. Go output is additionally run
// through golang.org/x/tools/imports so it is gofmt-clean.
//
// Formats:
//   - js: static class fields (walkAnimations, animations)
//   - go: package-level slices of an Animation struct
//   - yaml: both descriptor lists as a YAML document
package gen
