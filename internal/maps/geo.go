package maps

import "math"

// ValidCoordinates reports whether a coordinate pair lies within Earth's
// bounds. NaN and infinite values are invalid. Every coordinate trusted
// downstream of the geocoder must pass this check.
func ValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
