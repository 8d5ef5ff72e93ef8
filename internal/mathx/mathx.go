// Package mathx holds the integer helpers shared by several solvers.
package mathx

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return Abs(a/GCD(a, b)) * Abs(b)
}

// LCMAll folds LCM over values, starting from 1.
func LCMAll(values ...int) int {
	out := 1
	for _, v := range values {
		out = LCM(out, v)
	}
	return out
}

// Abs returns the absolute value of n.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
