package uictl

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// Dial is a control that can read some value. UI components take a Dial
// instead of reading a clock directly, so tests can inject fixed values.
type Dial[N Number] interface {
	Read() N
}
