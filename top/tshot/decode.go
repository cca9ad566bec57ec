package tshot

import (
	"caveconv/top/lbytes"
	"caveconv/top/tangle"
	"caveconv/top/tid"
	"github.com/pkg/errors"
)

func Decode(reader *lbytes.Reader) (*Shot, error) {
	shot := Shot{}
	err := error(nil)

	shot.From, err = tid.Read(reader)
	if err != nil {
		return nil, errors.Wrap(err, "tshot.Decode error: read from")
	}
	shot.To, err = tid.Read(reader)
	if err != nil {
		return nil, errors.Wrap(err, "tshot.Decode error: read to")
	}
	distance, err := reader.ReadInt32()
	if err != nil {
		return nil, errors.Wrap(err, "tshot.Decode error: read distance")
	}
	azimuth, err := reader.ReadInt16()
	if err != nil {
		return nil, errors.Wrap(err, "tshot.Decode error: read azimuth")
	}
	inclination, err := reader.ReadInt16()
	if err != nil {
		return nil, errors.Wrap(err, "tshot.Decode error: read inclination")
	}
	shot.Flags, err = reader.ReadByte()
	if err != nil {
		return nil, errors.Wrap(err, "tshot.Decode error: read flags")
	}
	shot.Roll, err = reader.ReadByte()
	if err != nil {
		return nil, errors.Wrap(err, "tshot.Decode error: read roll")
	}
	shot.TripIndex, err = reader.ReadInt16()
	if err != nil {
		return nil, errors.Wrap(err, "tshot.Decode error: read trip index")
	}
	if shot.Flags&FlagComment != 0 {
		comment, err := reader.ReadVarString()
		if err != nil {
			return nil, errors.Wrap(err, "tshot.Decode error: read comment")
		}
		shot.Comment = &comment
	}

	// distance is in mm
	shot.Distance = float64(distance) / 1000.0
	shot.Azimuth = tangle.ToAzimuth(azimuth)
	shot.Inclination = tangle.ToDegrees(inclination)
	shot.IsSplay = shot.To.IsUndefined()

	return &shot, nil
}

func DecodeBlock(reader *lbytes.Reader, numShots int) ([]Shot, error) {
	shots := make([]Shot, 0, min(numShots, lbytes.MaxPreallocatedRecords))
	for i := 0; i < numShots; i++ {
		shot, err := Decode(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "tshot.DecodeBlock error: shot %d", i)
		}
		shots = append(shots, *shot)
	}
	return shots, nil
}
