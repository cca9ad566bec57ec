package export

import (
	"encoding/json"
	"io"

	"caveconv/ds"
	"caveconv/top/survey"
	"caveconv/top/tdraw"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/vmihailenco/msgpack/v5"
)

func NewDocument(graph *survey.Graph, name string) Document {
	return Document{
		Name:         name,
		Summary:      graph.Summary(),
		Trips:        graph.Trips(),
		Shots:        graph.Shots(),
		References:   graph.References(),
		GroupedShots: graph.GroupedShots(),
		Overview:     graph.Overview(),
		Outline:      newDrawingDocument(graph.Outline()),
		Sideview:     newDrawingDocument(graph.Sideview()),
	}
}

func newDrawingDocument(drawing tdraw.Drawing) DrawingDocument {
	return DrawingDocument{
		Mapping: drawing.Mapping,
		Elements: lo.Map(
			drawing.Elements,
			func(element tdraw.Element, _ int) ElementDocument {
				return newElementDocument(element)
			},
		),
	}
}

func newElementDocument(element tdraw.Element) ElementDocument {
	switch e := element.(type) {
	case tdraw.Polygon:
		return ElementDocument{
			Type:   e.Tag().String(),
			Points: e.Points,
			Color:  e.Color.String(),
		}
	case tdraw.CrossSection:
		return ElementDocument{
			Type:      e.Tag().String(),
			Pos:       &e.Pos,
			Station:   &e.Station,
			Direction: &e.Direction,
		}
	default:
		panic(ds.ErrUnreachableCode{Caller: "export.newElementDocument", Value: element})
	}
}

func JSON(w io.Writer, graph *survey.Graph, name string) error {
	bs, err := json.MarshalIndent(NewDocument(graph, name), "", "  ")
	if err != nil {
		return errors.Wrap(err, "export.JSON error")
	}
	if _, err := w.Write(bs); err != nil {
		return errors.Wrap(err, "export.JSON error")
	}
	return nil
}

func MsgPack(w io.Writer, graph *survey.Graph, name string) error {
	if err := msgpack.NewEncoder(w).Encode(NewDocument(graph, name)); err != nil {
		return errors.Wrap(err, "export.MsgPack error")
	}
	return nil
}

// Write renders graph in the given format.
func Write(w io.Writer, format Format, graph *survey.Graph, name string, opts Options) error {
	switch format {
	case FormatSurvex:
		return Survex(w, graph, name, opts)
	case FormatJSON:
		return JSON(w, graph, name)
	case FormatMsgPack:
		return MsgPack(w, graph, name)
	default:
		return errors.Errorf("export.Write error: unknown format %q, expected one of %v", format, Formats)
	}
}

func ParseFormat(s string) (Format, error) {
	format := Format(s)
	if !lo.Contains(Formats, format) {
		return "", errors.Errorf("unknown format %q, expected one of %v", s, Formats)
	}
	return format, nil
}
