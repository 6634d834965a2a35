package grid

import "math/big"

// CountArrangements returns C(Width^Dimension, n), the number of ways to
// choose n of the grid's points. The count is built as a running product of
// binomial coefficients, so every intermediate value stays integral, and
// math/big keeps large grids exact.
func CountArrangements(dimension, width, n int) *big.Int {
	points := new(big.Int).Exp(big.NewInt(int64(width)), big.NewInt(int64(dimension)), nil)
	count := big.NewInt(1)
	for i := 0; i < n; i++ {
		count.Mul(count, points)
		count.Div(count, big.NewInt(int64(i+1)))
		points.Sub(points, big.NewInt(1))
	}
	return count
}
