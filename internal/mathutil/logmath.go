package mathutil

import "math"

// LogZero stands in for log(0). Anything at or below it is treated as zero
// probability mass.
const LogZero = -1e30

// IsLogZero reports whether x represents zero mass.
func IsLogZero(x float64) bool {
	return x <= LogZero || math.IsInf(x, -1)
}

// LogAdd returns log(exp(a) + exp(b)) without leaving the log domain.
// Once the smaller term is below float64 resolution (exp(-36) ≈ 2.3e-16)
// it is dropped.
func LogAdd(a, b float64) float64 {
	if a < b {
		a, b = b, a
	}
	if IsLogZero(b) {
		return a
	}
	d := b - a
	if d < -36.0 {
		return a
	}
	return a + math.Log1p(math.Exp(d))
}

// LogSub returns log(exp(a) - exp(b)). The result is LogZero when b >= a.
func LogSub(a, b float64) float64 {
	if IsLogZero(b) {
		return a
	}
	if a <= b {
		return LogZero
	}
	return a + math.Log1p(-math.Exp(b-a))
}

// LogSum folds LogAdd over xs. An empty slice sums to LogZero.
func LogSum(xs []float64) float64 {
	total := LogZero
	for _, x := range xs {
		total = LogAdd(total, x)
	}
	return total
}

// LogComplement returns log(1 - exp(x)) for a log probability x.
func LogComplement(x float64) float64 {
	return LogSub(0, x)
}
