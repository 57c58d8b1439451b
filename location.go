package easel

import "github.com/gogpu/easel/geom"

// Location is a point in screen coordinates: origin at the top-left, y
// growing downward. It is mutable in place with Move and MoveTo and
// compares by value.
type Location = geom.Point

// Loc is shorthand for a Location literal.
func Loc(x, y float64) Location { return geom.Pt(x, y) }
