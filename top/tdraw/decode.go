package tdraw

import (
	"caveconv/top/lbytes"
	"caveconv/top/tid"
	"github.com/pkg/errors"
)

const (
	// maxPreallocatedPoints bounds the slice capacity taken from an
	// untrusted count.
	maxPreallocatedPoints = 1024
)

func DecodePoint(reader *lbytes.Reader) (Point, error) {
	x, err := reader.ReadInt32()
	if err != nil {
		return Point{}, errors.Wrap(err, "DecodePoint error: read x")
	}
	y, err := reader.ReadInt32()
	if err != nil {
		return Point{}, errors.Wrap(err, "DecodePoint error: read y")
	}
	return Point{X: x, Y: y}, nil
}

func DecodeMapping(reader *lbytes.Reader) (Mapping, error) {
	origin, err := DecodePoint(reader)
	if err != nil {
		return Mapping{}, errors.Wrap(err, "DecodeMapping error: read origin")
	}
	scale, err := reader.ReadInt32()
	if err != nil {
		return Mapping{}, errors.Wrap(err, "DecodeMapping error: read scale")
	}
	return Mapping{Origin: origin, Scale: scale}, nil
}

func decodePolygon(reader *lbytes.Reader) (Polygon, error) {
	count, err := reader.ReadInt32()
	if err != nil {
		return Polygon{}, errors.Wrap(err, "decodePolygon error: read point count")
	}
	// a negative count reads as an empty point list
	numPoints := int(count)
	if numPoints < 0 {
		numPoints = 0
	}
	points := make([]Point, 0, min(numPoints, maxPreallocatedPoints))
	for i := 0; i < numPoints; i++ {
		point, err := DecodePoint(reader)
		if err != nil {
			return Polygon{}, errors.Wrapf(err, "decodePolygon error: read point %d", i)
		}
		points = append(points, point)
	}
	color, err := reader.ReadByte()
	if err != nil {
		return Polygon{}, errors.Wrap(err, "decodePolygon error: read color")
	}
	return Polygon{Points: points, Color: Color(color)}, nil
}

func decodeCrossSection(reader *lbytes.Reader) (CrossSection, error) {
	pos, err := DecodePoint(reader)
	if err != nil {
		return CrossSection{}, errors.Wrap(err, "decodeCrossSection error: read pos")
	}
	station, err := tid.Read(reader)
	if err != nil {
		return CrossSection{}, errors.Wrap(err, "decodeCrossSection error: read station")
	}
	direction, err := reader.ReadInt32()
	if err != nil {
		return CrossSection{}, errors.Wrap(err, "decodeCrossSection error: read direction")
	}
	return CrossSection{Pos: pos, Station: station, Direction: direction}, nil
}

func DecodeElement(reader *lbytes.Reader) (Element, error) {
	tag, err := reader.ReadByte()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeElement error: read tag")
	}
	switch ElementTag(tag) {
	case TagPolygon:
		polygon, err := decodePolygon(reader)
		if err != nil {
			return nil, errors.Wrap(err, "DecodeElement error")
		}
		return polygon, nil
	case TagCrossSection:
		crossSection, err := decodeCrossSection(reader)
		if err != nil {
			return nil, errors.Wrap(err, "DecodeElement error")
		}
		return crossSection, nil
	default:
		return nil, errors.WithStack(&ErrUnsupportedElement{Tag: tag})
	}
}

// DecodeDrawing reads a mapping and elements up to the terminator byte.
func DecodeDrawing(reader *lbytes.Reader) (*Drawing, error) {
	mapping, err := DecodeMapping(reader)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeDrawing error")
	}
	elements := make([]Element, 0)
	for {
		next, err := reader.PeekByte()
		if err != nil {
			return nil, errors.Wrapf(err, "DecodeDrawing error: element %d", len(elements))
		}
		if next == Terminator {
			if _, err := reader.ReadByte(); err != nil {
				return nil, errors.Wrap(err, "DecodeDrawing error: read terminator")
			}
			break
		}
		element, err := DecodeElement(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "DecodeDrawing error: element %d", len(elements))
		}
		elements = append(elements, element)
	}
	drawing := NewDrawing(mapping, elements)
	return &drawing, nil
}
