package tdraw

import (
	"fmt"

	"caveconv/top/tid"
	"github.com/dhconnelly/rtreego"
)

type (
	// Point is a world coordinate in mm relative to the first station.
	Point struct {
		X int32 `json:"x" msgpack:"x"`
		Y int32 `json:"y" msgpack:"y"`
	}
	// Mapping is the last used scroll position and scale of a view.
	Mapping struct {
		Origin Point `json:"origin" msgpack:"origin"`
		Scale  int32 `json:"scale" msgpack:"scale"`
	}
	// Element is either a Polygon or a CrossSection.
	Element interface {
		Tag() ElementTag
		Bounds() (Bounds, bool)
		isElement()
	}
	ElementTag byte
	Polygon    struct {
		Points []Point `json:"points" msgpack:"points"`
		Color  Color   `json:"color" msgpack:"color"`
	}
	CrossSection struct {
		Pos     Point  `json:"pos" msgpack:"pos"`
		Station tid.ID `json:"station" msgpack:"station"`
		// Direction is -1 for horizontal, otherwise the projection azimuth
		// in internal angle units.
		Direction int32 `json:"direction" msgpack:"direction"`
	}
	Color  byte
	Bounds struct {
		MinX float64 `json:"min_x" msgpack:"min_x"`
		MinY float64 `json:"min_y" msgpack:"min_y"`
		MaxX float64 `json:"max_x" msgpack:"max_x"`
		MaxY float64 `json:"max_y" msgpack:"max_y"`
	}
	Drawing struct {
		Mapping  Mapping   `json:"mapping" msgpack:"mapping"`
		Elements []Element `json:"elements" msgpack:"-"`
		index    *rtreego.Rtree
	}
	// ErrUnsupportedElement indicates an element tag other than polygon or
	// cross section.
	ErrUnsupportedElement struct {
		Tag byte
	}
)

const (
	TagPolygon      = ElementTag(1)
	TagCrossSection = ElementTag(3)
	// Terminator ends the element list of a drawing.
	Terminator = byte(0)
)

const (
	ColorBlack = Color(iota + 1)
	ColorGray
	ColorBrown
	ColorBlue
	ColorRed
	ColorGreen
	ColorOrange
)

const (
	DirectionHorizontal = int32(-1)
	MinScale            = int32(10)
	MaxScale            = int32(50000)
)

func (e *ErrUnsupportedElement) Error() string {
	return fmt.Sprintf("unsupported drawing element: tag %d", e.Tag)
}
