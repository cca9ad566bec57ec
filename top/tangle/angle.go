// Package tangle converts PocketTopo internal angle units, where a full
// circle is 2^16 units.
package tangle

import (
	"math"
)

const (
	FullCircle = 65536.0
)

func ToDegrees(units int16) float64 {
	return float64(units) * 360.0 / FullCircle
}

// ToAzimuth converts units to degrees in [0, 360).
func ToAzimuth(units int16) float64 {
	degrees := ToDegrees(units)
	if degrees < 0 {
		degrees += 360.0
	}
	return degrees
}

// Reverse rotates an azimuth by half a turn, keeping it in [0, 360).
func Reverse(azimuth float64) float64 {
	reversed := math.Mod(azimuth+180.0, 360.0)
	if reversed < 0 {
		reversed += 360.0
	}
	return reversed
}
