package match

//go:generate go tool stringer -type=Class -output=class_string.go

// Class is the category a clip is sorted into.
type Class int

const (
	Unmatched Class = iota
	Locomotion
	General
)
