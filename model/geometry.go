package model

import "math"

const collinearEpsilon = 1e-6

// collinear uses the shoelace area of the three pixel positions.
func collinear(p1, p2, p3 Point) bool {
	x1, y1 := float64(p1.X), float64(p1.Y)
	x2, y2 := float64(p2.X), float64(p2.Y)
	x3, y3 := float64(p3.X), float64(p3.Y)
	area := 0.5 * math.Abs(x1*(y2-y3)+x2*(y3-y1)+x3*(y1-y2))
	return area < collinearEpsilon
}
