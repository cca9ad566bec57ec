package survey

import (
	"iter"
	"slices"
	"strings"

	"caveconv/top/tshot"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GroupedShotsSeq yields one averaged record per physical connection. Pairs
// are visited in insertion order; once (a, b) is emitted, (b, a) is
// skipped. Every call starts a fresh pass.
func (g *Graph) GroupedShotsSeq() iter.Seq[GroupedShot] {
	return func(yield func(GroupedShot) bool) {
		consumed := map[Pair]struct{}{}
		g.pairs.Each(func(pair Pair, measurements []tshot.Shot) bool {
			if _, ok := consumed[pair]; ok {
				return true
			}
			consumed[pair] = struct{}{}
			consumed[pair.Reverse()] = struct{}{}
			return yield(average(pair, measurements))
		})
	}
}

func (g *Graph) GroupedShots() []GroupedShot {
	return slices.Collect(g.GroupedShotsSeq())
}

// TotalDistance counts every physical connection once.
func (g *Graph) TotalDistance() float64 {
	return sumDistances(g.GroupedShots())
}

func average(pair Pair, measurements []tshot.Shot) GroupedShot {
	field := func(pick func(tshot.Shot) float64) []float64 {
		return lo.Map(
			measurements,
			func(shot tshot.Shot, _ int) float64 {
				return pick(shot)
			},
		)
	}
	comments := lo.FilterMap(
		measurements,
		func(shot tshot.Shot, _ int) (string, bool) {
			return shot.CommentText(), shot.CommentText() != ""
		},
	)

	return GroupedShot{
		From:        pair.From,
		To:          pair.To,
		Distance:    stat.Mean(field(func(s tshot.Shot) float64 { return s.Distance }), nil),
		Azimuth:     stat.Mean(field(func(s tshot.Shot) float64 { return s.Azimuth }), nil),
		Inclination: stat.Mean(field(func(s tshot.Shot) float64 { return s.Inclination }), nil),
		Comment:     strings.Join(comments, CommentSeparator),
		Count:       len(measurements),
	}
}

func sumDistances(groupedShots []GroupedShot) float64 {
	return floats.Sum(
		lo.Map(
			groupedShots,
			func(groupedShot GroupedShot, _ int) float64 {
				return groupedShot.Distance
			},
		),
	)
}
