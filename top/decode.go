// Package top decodes PocketTopo version 3 data files (.top) into a
// survey graph.
package top

import (
	"io"
	"log"
	"os"

	"caveconv/top/lbytes"
	"caveconv/top/survey"
	"caveconv/top/tdraw"
	"caveconv/top/theader"
	"caveconv/top/tref"
	"caveconv/top/tshot"
	"caveconv/top/ttrip"
	"github.com/pkg/errors"
)

var logger = log.New(io.Discard, "top: ", log.LstdFlags)

// SetLogger routes decoder debug output.
func SetLogger(l *log.Logger) {
	logger = l
}

type (
	// File is the record sequence of a .top file in decoding order.
	File struct {
		Header     theader.Header
		Trips      []ttrip.Trip
		Shots      []tshot.Shot
		References []tref.Reference
		Overview   tdraw.Mapping
		Outline    tdraw.Drawing
		Sideview   tdraw.Drawing
	}
)

func readCount(reader *lbytes.Reader, name string) (int, error) {
	count, err := reader.ReadInt32()
	if err != nil {
		return 0, errors.Wrapf(err, "read %s count", name)
	}
	if count < 0 {
		return 0, errors.Wrapf(theader.ErrInvalidFormat, "negative %s count %d", name, count)
	}
	return int(count), nil
}

// DecodeRecords reads the whole file without building the graph.
func DecodeRecords(reader *lbytes.Reader) (*File, error) {
	file := File{}

	header, err := theader.Decode(reader)
	if err != nil {
		return nil, err
	}
	file.Header = *header

	numTrips, err := readCount(reader, "trip")
	if err != nil {
		return nil, err
	}
	file.Trips, err = ttrip.DecodeBlock(reader, numTrips)
	if err != nil {
		return nil, err
	}

	numShots, err := readCount(reader, "shot")
	if err != nil {
		return nil, err
	}
	file.Shots, err = tshot.DecodeBlock(reader, numShots)
	if err != nil {
		return nil, err
	}

	numReferences, err := readCount(reader, "reference")
	if err != nil {
		return nil, err
	}
	file.References, err = tref.DecodeBlock(reader, numReferences)
	if err != nil {
		return nil, err
	}

	file.Overview, err = tdraw.DecodeMapping(reader)
	if err != nil {
		return nil, errors.Wrap(err, "read overview")
	}
	outline, err := tdraw.DecodeDrawing(reader)
	if err != nil {
		return nil, errors.Wrap(err, "read outline")
	}
	file.Outline = *outline
	sideview, err := tdraw.DecodeDrawing(reader)
	if err != nil {
		return nil, errors.Wrap(err, "read sideview")
	}
	file.Sideview = *sideview

	logger.Printf(
		"decoded %d trips, %d shots, %d references, %d outline and %d sideview elements in %d bytes",
		len(file.Trips), len(file.Shots), len(file.References),
		len(file.Outline.Elements), len(file.Sideview.Elements), reader.Offset(),
	)
	return &file, nil
}

// ToGraph inserts every record into a fresh graph in file order.
func ToGraph(file File) *survey.Graph {
	graph := survey.NewGraph()
	for _, trip := range file.Trips {
		graph.AddTrip(trip)
	}
	for _, shot := range file.Shots {
		graph.AddShot(shot)
	}
	for _, ref := range file.References {
		graph.AddReference(ref)
	}
	graph.SetOverview(file.Overview)
	graph.SetOutline(file.Outline)
	graph.SetSideview(file.Sideview)
	return graph
}

// Decode reads a complete file. No graph is returned on any failure.
func Decode(r io.Reader) (*survey.Graph, error) {
	file, err := DecodeRecords(lbytes.NewReader(r))
	if err != nil {
		return nil, errors.Wrap(err, "top.Decode error")
	}
	return ToGraph(*file), nil
}

func DecodeBytes(bs []byte) (*survey.Graph, error) {
	file, err := DecodeRecords(lbytes.NewBytesReader(bs))
	if err != nil {
		return nil, errors.Wrap(err, "top.DecodeBytes error")
	}
	return ToGraph(*file), nil
}

func DecodeFile(path string) (graph *survey.Graph, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "top.DecodeFile error: open %s", path)
	}
	logger.Printf("opened %s", path)
	defer func() {
		closeErr := f.Close()
		logger.Printf("closed %s", path)
		if err == nil && closeErr != nil {
			graph = nil
			err = errors.Wrapf(closeErr, "top.DecodeFile error: close %s", path)
		}
	}()

	graph, err = Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "top.DecodeFile error: %s", path)
	}
	return graph, nil
}
