package tshot

import (
	"caveconv/top/tid"
)

type (
	Shot struct {
		From        tid.ID  `json:"from" msgpack:"from"`
		To          tid.ID  `json:"to" msgpack:"to"`
		Distance    float64 `json:"distance" msgpack:"distance"`
		Azimuth     float64 `json:"azimuth" msgpack:"azimuth"`
		Inclination float64 `json:"inclination" msgpack:"inclination"`
		// Flags is a bit set:
		//
		//   0000 00 | 1 | 0
		//              ^   ^
		//              |   |
		//              |  flipped shot, read but never applied
		//              |
		//           comment string follows
		Flags byte `json:"flags" msgpack:"flags"`
		// Roll is the display roll angle, full circle = 256, up = 0, left = 64, down = 128.
		Roll      byte    `json:"roll" msgpack:"roll"`
		IsSplay   bool    `json:"is_splay" msgpack:"is_splay"`
		TripIndex int16   `json:"trip_index" msgpack:"trip_index"`
		Comment   *string `json:"comment" msgpack:"comment"`
	}
)

const (
	FlagFlipped = byte(1 << 0)
	FlagComment = byte(1 << 1)
	// NoTrip is the trip index of shots outside any trip.
	NoTrip = int16(-1)
)
