// pkg/utils/math.go
package utils

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Chebyshev returns the chessboard distance between two grid cells.
func Chebyshev(ax, ay, bx, by int) int {
	dx := Abs(ax - bx)
	dy := Abs(ay - by)
	if dx > dy {
		return dx
	}
	return dy
}
