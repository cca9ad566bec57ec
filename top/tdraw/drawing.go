package tdraw

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/samber/lo"
)

const (
	// minExtent keeps point-like elements indexable; rtreego rejects
	// zero-length sides.
	minExtent = 1.0
)

// indexedElement adapts an element to rtreego.Spatial.
type indexedElement struct {
	position int
	rect     rtreego.Rect
}

func (e indexedElement) Bounds() rtreego.Rect {
	return e.rect
}

func NewDrawing(mapping Mapping, elements []Element) Drawing {
	drawing := Drawing{
		Mapping:  mapping,
		Elements: elements,
		index:    rtreego.NewTree(2, 25, 50),
	}
	for i, element := range elements {
		bounds, ok := element.Bounds()
		if !ok {
			continue
		}
		rect, err := toRect(bounds)
		if err != nil {
			continue
		}
		drawing.index.Insert(indexedElement{position: i, rect: rect})
	}
	return drawing
}

// Bounds covers every element that has a position.
func (d Drawing) Bounds() (Bounds, bool) {
	boundsList := lo.FilterMap(
		d.Elements,
		func(element Element, _ int) (Bounds, bool) {
			return element.Bounds()
		},
	)
	if len(boundsList) == 0 {
		return Bounds{}, false
	}
	return lo.Reduce(
		boundsList[1:],
		func(result Bounds, bounds Bounds, _ int) Bounds {
			return result.Union(bounds)
		},
		boundsList[0],
	), true
}

// Query returns the elements intersecting the area, in drawing order.
func (d Drawing) Query(area Bounds) []Element {
	if d.index == nil || d.index.Size() == 0 {
		return nil
	}
	rect, err := toRect(area)
	if err != nil {
		return nil
	}
	positions := lo.Map(
		d.index.SearchIntersect(rect),
		func(spatial rtreego.Spatial, _ int) int {
			return spatial.(indexedElement).position
		},
	)
	sort.Ints(positions)
	return lo.Map(
		positions,
		func(position int, _ int) Element {
			return d.Elements[position]
		},
	)
}

func (d Drawing) Polygons() []Polygon {
	return lo.FilterMap(
		d.Elements,
		func(element Element, _ int) (Polygon, bool) {
			polygon, ok := element.(Polygon)
			return polygon, ok
		},
	)
}

func (d Drawing) CrossSections() []CrossSection {
	return lo.FilterMap(
		d.Elements,
		func(element Element, _ int) (CrossSection, bool) {
			crossSection, ok := element.(CrossSection)
			return crossSection, ok
		},
	)
}

func toRect(bounds Bounds) (rtreego.Rect, error) {
	point := rtreego.Point{bounds.MinX, bounds.MinY}
	lengths := []float64{
		lo.Max([]float64{bounds.Width(), minExtent}),
		lo.Max([]float64{bounds.Height(), minExtent}),
	}
	return rtreego.NewRect(point, lengths)
}
