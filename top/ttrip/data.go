package ttrip

import (
	"time"
)

type (
	Trip struct {
		Time        time.Time `json:"time" msgpack:"time"`
		Comment     string    `json:"comment" msgpack:"comment"`
		Declination float64   `json:"declination" msgpack:"declination"`
	}
)

const (
	// ticks are 100ns units
	ticksPerMicrosecond = 10
	microsecondsPerDay  = int64(24 * time.Hour / time.Microsecond)
)

// Epoch is the zero point of trip timestamps.
var Epoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
