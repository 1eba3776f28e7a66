package genetic

// Normalize scales value linearly from [oldMin, oldMax] to [newMin, newMax].
// A degenerate old range maps every value to the middle of the new range.
func Normalize(value, oldMin, oldMax, newMin, newMax float64) float64 {
	if oldMax == oldMin {
		return (newMin + newMax) / 2
	}

	return (value-oldMin)/(oldMax-oldMin)*(newMax-newMin) + newMin
}

// IsPointInRange reports whether start <= x <= end
func IsPointInRange(x, start, end float64) bool {
	return x >= start && x <= end
}

// RandomValue draws uniformly from [min, max)
func RandomValue(rnd Random, min, max float64) float64 {
	return min + (max-min)*rnd.Float64()
}
