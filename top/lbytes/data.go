package lbytes

import (
	"bufio"

	"github.com/pkg/errors"
)

type (
	Reader struct {
		buf    *bufio.Reader
		offset int64
	}
)

var (
	ErrTruncated       = errors.New("truncated input")
	ErrInvalidEncoding = errors.New("invalid string encoding")
)

const (
	// maxVarIntBytes is enough for any 32-bit length: 5 groups of 7 bits.
	maxVarIntBytes = 5
	// MaxPreallocatedRecords bounds the capacity reserved from a count read
	// off the stream; larger blocks grow while decoding.
	MaxPreallocatedRecords = 1024
)
