package physics

import "math"

const (
	decimals    = 4
	significant = 6
)

// Round rounds a result for display and reproducible comparison. Values
// of magnitude 1 or more keep 4 decimal places; smaller ones keep 6
// significant figures so that viscosities, strains and radii in
// millimetres do not collapse to zero.
func Round(x float64) float64 {
	if x == 0 {
		return 0
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) >= 1e15 {
		return x
	}
	places := decimals
	if mag := int(math.Floor(math.Log10(math.Abs(x)))); mag < 0 {
		places = max(decimals, significant-1-mag)
	}
	if places > 300 {
		return x
	}
	p := math.Pow(10, float64(places))
	r := math.Round(x*p) / p
	if r == 0 {
		return 0
	}
	return r
}

// Finish is the last step of every solver branch: it rejects NaN and
// infinities, then rounds.
func Finish(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, NonReal("the result is not a finite real number")
	}
	return Round(x), nil
}
