package tdraw

import (
	"fmt"
	"math"
)

func (Polygon) Tag() ElementTag {
	return TagPolygon
}

func (p Polygon) Bounds() (Bounds, bool) {
	if len(p.Points) == 0 {
		return Bounds{}, false
	}
	bounds := Bounds{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
	for _, point := range p.Points {
		bounds = bounds.Extend(point)
	}
	return bounds, true
}

func (Polygon) isElement() {}

func (CrossSection) Tag() ElementTag {
	return TagCrossSection
}

func (c CrossSection) Bounds() (Bounds, bool) {
	return Bounds{
		MinX: float64(c.Pos.X),
		MinY: float64(c.Pos.Y),
		MaxX: float64(c.Pos.X),
		MaxY: float64(c.Pos.Y),
	}, true
}

func (c CrossSection) IsHorizontal() bool {
	return c.Direction == DirectionHorizontal
}

func (CrossSection) isElement() {}

func (t ElementTag) String() string {
	switch t {
	case TagPolygon:
		return "polygon"
	case TagCrossSection:
		return "cross_section"
	default:
		return fmt.Sprintf("tag(%d)", byte(t))
	}
}

var colorNames = map[Color]string{
	ColorBlack:  "black",
	ColorGray:   "gray",
	ColorBrown:  "brown",
	ColorBlue:   "blue",
	ColorRed:    "red",
	ColorGreen:  "green",
	ColorOrange: "orange",
}

func (c Color) IsValid() bool {
	return c >= ColorBlack && c <= ColorOrange
}

func (c Color) String() string {
	name, ok := colorNames[c]
	if !ok {
		return fmt.Sprintf("color(%d)", byte(c))
	}
	return name
}

func (b Bounds) Extend(point Point) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, float64(point.X)),
		MinY: math.Min(b.MinY, float64(point.Y)),
		MaxX: math.Max(b.MaxX, float64(point.X)),
		MaxY: math.Max(b.MaxY, float64(point.Y)),
	}
}

func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Viewport returns the world area shown on a screen of the given size in
// mm, centred on the origin at 1:Scale.
func (m Mapping) Viewport(widthMM float64, heightMM float64) Bounds {
	halfWidth := widthMM * float64(m.Scale) / 2
	halfHeight := heightMM * float64(m.Scale) / 2
	return Bounds{
		MinX: float64(m.Origin.X) - halfWidth,
		MinY: float64(m.Origin.Y) - halfHeight,
		MaxX: float64(m.Origin.X) + halfWidth,
		MaxY: float64(m.Origin.Y) + halfHeight,
	}
}

func (m Mapping) HasValidScale() bool {
	return m.Scale >= MinScale && m.Scale <= MaxScale
}
