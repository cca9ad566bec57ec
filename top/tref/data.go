package tref

import (
	"caveconv/top/tid"
)

type (
	// Reference fixes a station to absolute coordinates, all in mm.
	Reference struct {
		Station  tid.ID `json:"station" msgpack:"station"`
		East     int64  `json:"east" msgpack:"east"`
		North    int64  `json:"north" msgpack:"north"`
		Altitude int64  `json:"altitude" msgpack:"altitude"`
		Comment  string `json:"comment" msgpack:"comment"`
	}
)
