// Package survey holds the survey graph rebuilt from a PocketTopo file.
package survey

import (
	"caveconv/ds"
	"caveconv/top/tdraw"
	"caveconv/top/tid"
	"caveconv/top/tref"
	"caveconv/top/tshot"
	"caveconv/top/ttrip"
)

type (
	// Pair is a directed station connection.
	Pair struct {
		From tid.ID
		To   tid.ID
	}
	// GroupedShot is one physical connection, averaged over every
	// measurement of it in either direction.
	GroupedShot struct {
		From        tid.ID  `json:"from" msgpack:"from"`
		To          tid.ID  `json:"to" msgpack:"to"`
		Distance    float64 `json:"distance" msgpack:"distance"`
		Azimuth     float64 `json:"azimuth" msgpack:"azimuth"`
		Inclination float64 `json:"inclination" msgpack:"inclination"`
		Comment     string  `json:"comment" msgpack:"comment"`
		Count       int     `json:"count" msgpack:"count"`
	}
	Graph struct {
		trips      []ttrip.Trip
		shots      []tshot.Shot
		references []tref.Reference
		overview   tdraw.Mapping
		outline    tdraw.Drawing
		sideview   tdraw.Drawing
		// pairs holds every non-splay shot under both orientations
		pairs *ds.LinkedHashMap[Pair, []tshot.Shot]
	}
	Summary struct {
		NumTrips      int     `json:"num_trips" msgpack:"num_trips"`
		NumShots      int     `json:"num_shots" msgpack:"num_shots"`
		NumSplays     int     `json:"num_splays" msgpack:"num_splays"`
		NumLegs       int     `json:"num_legs" msgpack:"num_legs"`
		NumStations   int     `json:"num_stations" msgpack:"num_stations"`
		NumReferences int     `json:"num_references" msgpack:"num_references"`
		TotalDistance float64 `json:"total_distance" msgpack:"total_distance"`
	}
)

const (
	CommentSeparator = "; "
)
