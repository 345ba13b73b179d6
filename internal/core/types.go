package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// View is the read-only surface presentation code renders from.
type View interface {
	Name() string
	Size() Size
	Cells() []uint8
}
