// Package asset extracts animation clips from glTF model files.
//
// It uses github.com/qmuntal/gltf to read both .gltf (JSON) and .glb
// (binary) documents and yields the ordered (index, name) pairs of the
// document's animations. Nothing else in the document is inspected.
//
// Key types:
//   - Clip: one animation's index and full name
//   - Source: yields the clips for an asset name
//   - FileSource: resolves asset names to files under a directory
//   - CachedSource: memoizes another Source per asset name
package asset
