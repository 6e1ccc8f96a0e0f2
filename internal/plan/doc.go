// Package plan builds the animation mappings and transition descriptors
// consumed by code generation.
//
// Pipeline:
//  1. Load clips from an asset.Source
//  2. Normalize each clip name and classify the canonical key
//  3. Derive the reverse-aware output name and insert it into the
//     locomotion or general Mapping (insertion ordered, last write wins)
//  4. Attach successors to produce Transition lists
//  5. Emit diagnostics (unmatched clips, dropped reversed clips, overwrites)
package plan
