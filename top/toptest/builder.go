// Package toptest builds PocketTopo byte streams for tests.
package toptest

import (
	"encoding/binary"
	"math"
	"time"
)

// Builder appends little-endian fields to an in-memory .top image.
type Builder struct {
	bs []byte
}

type (
	Trip struct {
		Time        time.Time
		Comment     string
		Declination float64
	}
	Shot struct {
		From        uint32
		To          uint32
		DistanceMM  int32
		Azimuth     float64
		Inclination float64
		Flags       byte
		Roll        byte
		TripIndex   int16
		Comment     string
	}
	Reference struct {
		Station  uint32
		East     int64
		North    int64
		Altitude int32
		Comment  string
	}
)

const (
	Undefined = uint32(0x80000000)
	// FlagComment marks a shot that carries a comment string.
	FlagComment = byte(0x02)
)

var epoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

func New() *Builder {
	return &Builder{bs: make([]byte, 0, 64)}
}

// NewFile starts an image with the version 3 header.
func NewFile() *Builder {
	return New().Raw([]byte("Top\x03"))
}

func (b *Builder) Bytes() []byte {
	return b.bs
}

func (b *Builder) Raw(bs []byte) *Builder {
	b.bs = append(b.bs, bs...)
	return b
}

func (b *Builder) Byte(value byte) *Builder {
	b.bs = append(b.bs, value)
	return b
}

func (b *Builder) Int16(value int16) *Builder {
	b.bs = binary.LittleEndian.AppendUint16(b.bs, uint16(value))
	return b
}

func (b *Builder) Int32(value int32) *Builder {
	b.bs = binary.LittleEndian.AppendUint32(b.bs, uint32(value))
	return b
}

func (b *Builder) Uint32(value uint32) *Builder {
	b.bs = binary.LittleEndian.AppendUint32(b.bs, value)
	return b
}

func (b *Builder) Int64(value int64) *Builder {
	b.bs = binary.LittleEndian.AppendUint64(b.bs, uint64(value))
	return b
}

func (b *Builder) Uint64(value uint64) *Builder {
	b.bs = binary.LittleEndian.AppendUint64(b.bs, value)
	return b
}

func (b *Builder) VarString(value string) *Builder {
	length := uint32(len(value))
	for length >= 0x80 {
		b.bs = append(b.bs, byte(length)|0x80)
		length >>= 7
	}
	b.bs = append(b.bs, byte(length))
	b.bs = append(b.bs, value...)
	return b
}

func (b *Builder) Trip(trip Trip) *Builder {
	return b.
		Uint64(uint64(Ticks(trip.Time))).
		VarString(trip.Comment).
		Int16(AngleUnits(trip.Declination))
}

func (b *Builder) Shot(shot Shot) *Builder {
	b.
		Uint32(shot.From).
		Uint32(shot.To).
		Int32(shot.DistanceMM).
		Int16(AngleUnits(shot.Azimuth)).
		Int16(AngleUnits(shot.Inclination)).
		Byte(shot.Flags).
		Byte(shot.Roll).
		Int16(shot.TripIndex)
	if shot.Flags&FlagComment != 0 {
		b.VarString(shot.Comment)
	}
	return b
}

func (b *Builder) Reference(ref Reference) *Builder {
	return b.
		Uint32(ref.Station).
		Int64(ref.East).
		Int64(ref.North).
		Int32(ref.Altitude).
		VarString(ref.Comment)
}

func (b *Builder) Point(x int32, y int32) *Builder {
	return b.Int32(x).Int32(y)
}

func (b *Builder) Mapping(x int32, y int32, scale int32) *Builder {
	return b.Point(x, y).Int32(scale)
}

// Polygon appends a polygon element; points are x, y pairs.
func (b *Builder) Polygon(color byte, points ...[2]int32) *Builder {
	b.Byte(1).Int32(int32(len(points)))
	for _, point := range points {
		b.Point(point[0], point[1])
	}
	return b.Byte(color)
}

func (b *Builder) CrossSection(x int32, y int32, station uint32, direction int32) *Builder {
	return b.Byte(3).Point(x, y).Uint32(station).Int32(direction)
}

// EmptyDrawing appends a drawing with a mapping and no elements.
func (b *Builder) EmptyDrawing() *Builder {
	return b.Mapping(0, 0, 500).Byte(0)
}

// EmptyTail appends the overview mapping and two empty drawings.
func (b *Builder) EmptyTail() *Builder {
	return b.Mapping(0, 0, 500).EmptyDrawing().EmptyDrawing()
}

func CompositeID(major uint16, minor uint16) uint32 {
	return uint32(major)<<16 | uint32(minor)
}

// NumericID is the inverse of the negative-range station decoding.
func NumericID(number int64) uint32 {
	return uint32(int32(number - 0x80000001))
}

// Ticks counts 100ns units since 0001-01-01.
func Ticks(t time.Time) int64 {
	return (t.Unix()-epoch.Unix())*10_000_000 + int64(t.Nanosecond()/100)
}

// AngleUnits converts degrees to the file's 1/65536-turn units.
func AngleUnits(degrees float64) int16 {
	return int16(int32(math.Round(degrees * 65536.0 / 360.0)))
}
