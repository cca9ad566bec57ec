package ttrip

import (
	"time"

	"caveconv/top/lbytes"
	"caveconv/top/tangle"
	"github.com/pkg/errors"
)

func Decode(reader *lbytes.Reader) (*Trip, error) {
	ticks, err := reader.ReadUint64()
	if err != nil {
		return nil, errors.Wrap(err, "ttrip.Decode error: read time")
	}
	comment, err := reader.ReadVarString()
	if err != nil {
		return nil, errors.Wrap(err, "ttrip.Decode error: read comment")
	}
	declination, err := reader.ReadInt16()
	if err != nil {
		return nil, errors.Wrap(err, "ttrip.Decode error: read declination")
	}

	return &Trip{
		Time:        TicksToTime(ticks),
		Comment:     comment,
		Declination: tangle.ToDegrees(declination),
	}, nil
}

func DecodeBlock(reader *lbytes.Reader, numTrips int) ([]Trip, error) {
	trips := make([]Trip, 0, min(numTrips, lbytes.MaxPreallocatedRecords))
	for i := 0; i < numTrips; i++ {
		trip, err := Decode(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "ttrip.DecodeBlock error: trip %d", i)
		}
		trips = append(trips, *trip)
	}
	return trips, nil
}

// TicksToTime converts 100ns ticks since Epoch, truncated to microseconds.
// The day part is added separately since the full range overflows
// time.Duration.
func TicksToTime(ticks uint64) time.Time {
	microseconds := int64(ticks / ticksPerMicrosecond)
	days := microseconds / microsecondsPerDay
	rest := microseconds % microsecondsPerDay
	return Epoch.
		AddDate(0, 0, int(days)).
		Add(time.Duration(rest) * time.Microsecond)
}
