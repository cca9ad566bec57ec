package theader

import (
	"bytes"

	"caveconv/top/lbytes"
	"github.com/pkg/errors"
)

func IsValidMagicNumber(bs []byte) bool {
	return len(bs) >= DefaultHeaderSize && bytes.Equal(bs[:DefaultHeaderSize], MagicNumberBytes)
}

func Decode(reader *lbytes.Reader) (*Header, error) {
	magicNumberBytes, err := reader.ReadBytes(DefaultHeaderSize)
	if err != nil {
		if errors.Is(err, lbytes.ErrTruncated) {
			return nil, errors.Wrap(ErrInvalidFormat, "theader.Decode error: file shorter than header")
		}
		return nil, errors.Wrap(err, "theader.Decode error")
	}
	if !IsValidMagicNumber(magicNumberBytes) {
		return nil, errors.Wrapf(
			ErrInvalidFormat,
			`theader.Decode error: expected "%v", got "%v"`,
			MagicNumberBytes, magicNumberBytes,
		)
	}
	return &Header{
		MagicNumber: magicNumberBytes[:3],
		Version:     magicNumberBytes[3],
	}, nil
}
