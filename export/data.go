// Package export renders a survey graph as Survex, JSON or msgpack.
package export

import (
	"caveconv/top/survey"
	"caveconv/top/tdraw"
	"caveconv/top/tid"
	"caveconv/top/tref"
	"caveconv/top/tshot"
	"caveconv/top/ttrip"
)

type (
	Format  string
	Options struct {
		// Template replaces the embedded Survex template when set.
		Template      string
		IncludeSplays bool
	}
	// Document is the JSON and msgpack view of a graph.
	Document struct {
		Name         string               `json:"name" msgpack:"name"`
		Summary      survey.Summary       `json:"summary" msgpack:"summary"`
		Trips        []ttrip.Trip         `json:"trips" msgpack:"trips"`
		Shots        []tshot.Shot         `json:"shots" msgpack:"shots"`
		References   []tref.Reference     `json:"references" msgpack:"references"`
		GroupedShots []survey.GroupedShot `json:"grouped_shots" msgpack:"grouped_shots"`
		Overview     tdraw.Mapping        `json:"overview" msgpack:"overview"`
		Outline      DrawingDocument      `json:"outline" msgpack:"outline"`
		Sideview     DrawingDocument      `json:"sideview" msgpack:"sideview"`
	}
	DrawingDocument struct {
		Mapping  tdraw.Mapping     `json:"mapping" msgpack:"mapping"`
		Elements []ElementDocument `json:"elements" msgpack:"elements"`
	}
	ElementDocument struct {
		Type      string        `json:"type" msgpack:"type"`
		Points    []tdraw.Point `json:"points,omitempty" msgpack:"points,omitempty"`
		Color     string        `json:"color,omitempty" msgpack:"color,omitempty"`
		Pos       *tdraw.Point  `json:"pos,omitempty" msgpack:"pos,omitempty"`
		Station   *tid.ID       `json:"station,omitempty" msgpack:"station,omitempty"`
		Direction *int32        `json:"direction,omitempty" msgpack:"direction,omitempty"`
	}
	survexData struct {
		Name         string
		Summary      survey.Summary
		Trips        []ttrip.Trip
		FirstTrip    *ttrip.Trip
		GroupedShots []survey.GroupedShot
		Splays       []tshot.Shot
		References   []tref.Reference
	}
)

const (
	FormatSurvex  = Format("survex")
	FormatJSON    = Format("json")
	FormatMsgPack = Format("msgpack")
)

var Formats = []Format{FormatSurvex, FormatJSON, FormatMsgPack}
