package geom

import "math"

// Dash splits segment ab into the "on" pieces of an on/off pattern,
// starting with "on". An empty or all-zero pattern returns the whole
// segment.
func Dash(a, b Point, pattern []float64) [][2]Point {
	total := 0.0
	for _, v := range pattern {
		total += math.Max(v, 0)
	}
	if len(pattern) == 0 || total == 0 {
		return [][2]Point{{a, b}}
	}
	length := a.Distance(b)
	var out [][2]Point
	pos, i := 0.0, 0
	for pos < length {
		step := math.Max(pattern[i%len(pattern)], 0)
		end := math.Min(pos+step, length)
		if i%2 == 0 && end > pos {
			out = append(out, [2]Point{a.Lerp(b, pos/length), a.Lerp(b, end/length)})
		}
		pos = end
		i++
	}
	return out
}
