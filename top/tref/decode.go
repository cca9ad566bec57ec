package tref

import (
	"caveconv/top/lbytes"
	"caveconv/top/tid"
	"github.com/pkg/errors"
)

func Decode(reader *lbytes.Reader) (*Reference, error) {
	ref := Reference{}
	err := error(nil)

	ref.Station, err = tid.Read(reader)
	if err != nil {
		return nil, errors.Wrap(err, "tref.Decode error: read station")
	}
	ref.East, err = reader.ReadInt64()
	if err != nil {
		return nil, errors.Wrap(err, "tref.Decode error: read east")
	}
	ref.North, err = reader.ReadInt64()
	if err != nil {
		return nil, errors.Wrap(err, "tref.Decode error: read north")
	}
	altitude, err := reader.ReadInt32()
	if err != nil {
		return nil, errors.Wrap(err, "tref.Decode error: read altitude")
	}
	ref.Altitude = int64(altitude)
	ref.Comment, err = reader.ReadVarString()
	if err != nil {
		return nil, errors.Wrap(err, "tref.Decode error: read comment")
	}

	return &ref, nil
}

func DecodeBlock(reader *lbytes.Reader, numReferences int) ([]Reference, error) {
	refs := make([]Reference, 0, min(numReferences, lbytes.MaxPreallocatedRecords))
	for i := 0; i < numReferences; i++ {
		ref, err := Decode(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "tref.DecodeBlock error: reference %d", i)
		}
		refs = append(refs, *ref)
	}
	return refs, nil
}

// Metres returns east, north and altitude converted from mm.
func (r Reference) Metres() (east float64, north float64, altitude float64) {
	return float64(r.East) / 1000.0, float64(r.North) / 1000.0, float64(r.Altitude) / 1000.0
}
