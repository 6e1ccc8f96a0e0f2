package match

import "strings"

const (
	// NamespaceSeparator splits an exporter namespace ("Armature.001") from the clip label.
	NamespaceSeparator = "|"
	// ReverseMarker marks a clip baked as the reverse of another.
	ReverseMarker = ".reverse"
)

// Normalize reduces a raw clip name to its canonical key.
// The normalization pipeline:
// 1. Drop everything up to and including the first namespace separator.
// 2. Case-fold to lower.
// 3. Detect and strip the reversal marker suffix.
//
// Any string is accepted. Examples:
//   - "Armature.001|walk01_loop_251104" -> ("walk01_loop_251104", false)
//   - "Armature|Stand-To-Sit.REVERSE" -> ("stand-to-sit", true)
//   - "Default" -> ("default", false)
func Normalize(fullName string) (key string, reversed bool) {
	name := fullName
	if _, after, found := strings.Cut(fullName, NamespaceSeparator); found {
		name = after
	}

	name = strings.ToLower(name)

	if strings.HasSuffix(name, ReverseMarker) {
		return name[:len(name)-len(ReverseMarker)], true
	}

	return name, false
}
