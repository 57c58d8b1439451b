// Package geom is the geometry engine behind easel shapes.
//
// Every function operates on plain vertex sequences ([]Point) and returns
// fresh slices; nothing here keeps state, so the package is safe for
// concurrent use.
//
// Coordinates follow screen conventions: the origin is the top-left corner
// and y grows downward. Angles are in degrees. A positive angle turns a
// shape clockwise as seen on screen, and a heading of 0 points up
// (12 o'clock).
//
// Functions that need a minimum number of vertices panic with an error
// wrapping [ErrDegenerate] when given fewer. Callers validate user input
// before reaching this package; a degenerate sequence here is a bug.
package geom
