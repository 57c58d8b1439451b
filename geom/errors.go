package geom

import (
	"errors"
	"fmt"
)

// ErrDegenerate is wrapped by the panic value of engine functions that
// receive fewer vertices than they need.
var ErrDegenerate = errors.New("geom: degenerate vertex sequence")

func need(op string, vs []Point, n int) {
	if len(vs) < n {
		panic(fmt.Errorf("%w: %s needs at least %d vertices, got %d", ErrDegenerate, op, n, len(vs)))
	}
}
