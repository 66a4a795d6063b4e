package kmeans

import "math"

// OneDimKmeans performs k-means clustering on one-dimensional data with k=2.
// Centers start at the minimum and maximum and move to the mean of their
// members until the split point stabilises.
//
// The result is true for values in the high cluster. When every value is
// equal there is no split; values are then classified by sign, with positive
// values high.
func OneDimKmeans(values []float64) []bool {
	isHigh := make([]bool, len(values))
	if len(values) == 0 {
		return isHigh
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		for i, v := range values {
			isHigh[i] = v > 0
		}
		return isHigh
	}

	center := [2]float64{lo, hi}
	etol := math.Pow10(-6)
	for range 300 {
		threshold := (center[0] + center[1]) / 2.
		var highs, lows AverageStore
		for i, v := range values {
			isHigh[i] = threshold <= v
			if isHigh[i] {
				highs.Add(v)
			} else {
				lows.Add(v)
			}
		}
		center = [2]float64{lows.Average(), highs.Average()}
		if math.Abs((center[0]+center[1])/2.-threshold) < etol {
			break
		}
	}
	return isHigh
}
