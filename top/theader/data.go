package theader

import (
	"github.com/pkg/errors"
)

type (
	Header struct {
		MagicNumber []byte `json:"magic_number"`
		Version     byte   `json:"version"`
	}
)

const (
	DefaultHeaderSize = 4
	SupportedVersion  = byte(3)
)

var (
	MagicNumberBytes = []byte{'T', 'o', 'p', SupportedVersion}
	ErrInvalidFormat = errors.New("not a PocketTopo file or unsupported version")
)
