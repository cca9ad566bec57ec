package survey

import (
	"slices"

	"caveconv/ds"
	"caveconv/top/tdraw"
	"caveconv/top/tid"
	"caveconv/top/tref"
	"caveconv/top/tshot"
	"caveconv/top/ttrip"
	"github.com/samber/lo"
)

func NewGraph() *Graph {
	return &Graph{
		trips:      make([]ttrip.Trip, 0),
		shots:      make([]tshot.Shot, 0),
		references: make([]tref.Reference, 0),
		pairs:      ds.NewLinkedHashMap[Pair, []tshot.Shot](),
	}
}

func (p Pair) Reverse() Pair {
	return Pair{From: p.To, To: p.From}
}

func (g *Graph) AddTrip(trip ttrip.Trip) {
	g.trips = append(g.trips, trip)
}

// AddShot records the shot and, unless it is a splay, indexes it under
// (from, to) and its inverse under (to, from).
func (g *Graph) AddShot(shot tshot.Shot) {
	g.shots = append(g.shots, shot)
	if shot.IsSplay {
		return
	}

	inverted := shot.Invert()
	g.appendMeasurement(Pair{From: shot.From, To: shot.To}, shot)
	g.appendMeasurement(Pair{From: inverted.From, To: inverted.To}, inverted)
}

func (g *Graph) appendMeasurement(pair Pair, shot tshot.Shot) {
	g.pairs.Upsert(pair, func(measurements []tshot.Shot) []tshot.Shot {
		return append(measurements, shot)
	})
}

func (g *Graph) AddReference(ref tref.Reference) {
	g.references = append(g.references, ref)
}

func (g *Graph) SetOverview(mapping tdraw.Mapping) {
	g.overview = mapping
}

func (g *Graph) SetOutline(drawing tdraw.Drawing) {
	g.outline = drawing
}

func (g *Graph) SetSideview(drawing tdraw.Drawing) {
	g.sideview = drawing
}

func (g *Graph) Trips() []ttrip.Trip {
	return slices.Clone(g.trips)
}

// Shots returns a copy of every shot in file order, splays included.
func (g *Graph) Shots() []tshot.Shot {
	return slices.Clone(g.shots)
}

func (g *Graph) References() []tref.Reference {
	return slices.Clone(g.references)
}

func (g *Graph) Overview() tdraw.Mapping {
	return g.overview
}

func (g *Graph) Outline() tdraw.Drawing {
	return g.outline
}

func (g *Graph) Sideview() tdraw.Drawing {
	return g.sideview
}

// Measurements returns a copy of the shots indexed under pair, oriented
// from pair.From to pair.To.
func (g *Graph) Measurements(pair Pair) []tshot.Shot {
	measurements, _ := g.pairs.Get(pair)
	result := make([]tshot.Shot, len(measurements))
	copy(result, measurements)
	return result
}

// Pairs lists indexed connections in insertion order; each physical
// connection appears in both orientations.
func (g *Graph) Pairs() []Pair {
	return g.pairs.Keys()
}

func (g *Graph) Splays() []tshot.Shot {
	return lo.Filter(
		g.shots,
		func(shot tshot.Shot, _ int) bool {
			return shot.IsSplay
		},
	)
}

func (g *Graph) ShotsForTrip(tripIndex int) []tshot.Shot {
	return lo.Filter(
		g.shots,
		func(shot tshot.Shot, _ int) bool {
			return int(shot.TripIndex) == tripIndex
		},
	)
}

func (g *Graph) TripOf(shot tshot.Shot) (ttrip.Trip, bool) {
	if !shot.HasTrip() || int(shot.TripIndex) >= len(g.trips) {
		return ttrip.Trip{}, false
	}
	return g.trips[shot.TripIndex], true
}

// Stations lists defined station ids in first-seen order across shots and
// references.
func (g *Graph) Stations() []tid.ID {
	ids := make([]tid.ID, 0, len(g.shots)+len(g.references))
	for _, shot := range g.shots {
		ids = append(ids, shot.From, shot.To)
	}
	for _, ref := range g.references {
		ids = append(ids, ref.Station)
	}
	return lo.Uniq(
		lo.Reject(
			ids,
			func(id tid.ID, _ int) bool {
				return id.IsUndefined()
			},
		),
	)
}

func (g *Graph) Summary() Summary {
	groupedShots := g.GroupedShots()
	return Summary{
		NumTrips:      len(g.trips),
		NumShots:      len(g.shots),
		NumSplays:     len(g.Splays()),
		NumLegs:       len(groupedShots),
		NumStations:   len(g.Stations()),
		NumReferences: len(g.references),
		TotalDistance: sumDistances(groupedShots),
	}
}
