package indicators

import "math"

// DailyReturns computes the arithmetic daily return close[t]/close[t-1]-1.
// The first entry is NaN: there is no prior close to measure against.
func DailyReturns(closes []float64) []float64 {
	out := make([]float64, len(closes))
	for i := range closes {
		if i == 0 || closes[i-1] == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = closes[i]/closes[i-1] - 1
	}
	return out
}

// LogReturns computes ln(close[t]) - ln(close[t-1]). The first entry is NaN.
func LogReturns(closes []float64) []float64 {
	out := make([]float64, len(closes))
	for i := range closes {
		if i == 0 || closes[i-1] <= 0 || closes[i] <= 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = math.Log(closes[i]) - math.Log(closes[i-1])
	}
	return out
}
