package lbytes

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

func NewReader(r io.Reader) *Reader {
	return &Reader{
		buf: bufio.NewReader(r),
	}
}

func NewBytesReader(bs []byte) *Reader {
	return NewReader(bytes.NewReader(bs))
}

// Offset returns the number of bytes consumed so far.
func (b *Reader) Offset() int64 {
	return b.offset
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	read, err := io.ReadFull(b.buf, bs)
	b.offset += int64(read)
	if err != nil {
		return nil, truncated(err, n, read, b.offset)
	}
	return bs, nil
}

func (b *Reader) ReadByte() (byte, error) {
	bs, err := b.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return bs[0], nil
}

// PeekByte returns the next byte without consuming it.
func (b *Reader) PeekByte() (byte, error) {
	bs, err := b.buf.Peek(1)
	if err != nil {
		return 0, truncated(err, 1, 0, b.offset)
	}
	return bs[0], nil
}

func readFixed[T constraints.Integer](b *Reader, n int, decode func([]byte) T) (T, error) {
	bs, err := b.ReadBytes(n)
	if err != nil {
		return 0, err
	}
	return decode(bs), nil
}

func (b *Reader) ReadUint16() (uint16, error) {
	return readFixed(b, 2, binary.LittleEndian.Uint16)
}

func (b *Reader) ReadInt16() (int16, error) {
	return readFixed(b, 2, func(bs []byte) int16 {
		return int16(binary.LittleEndian.Uint16(bs))
	})
}

func (b *Reader) ReadUint32() (uint32, error) {
	return readFixed(b, 4, binary.LittleEndian.Uint32)
}

func (b *Reader) ReadInt32() (int32, error) {
	return readFixed(b, 4, func(bs []byte) int32 {
		return int32(binary.LittleEndian.Uint32(bs))
	})
}

func (b *Reader) ReadUint64() (uint64, error) {
	return readFixed(b, 8, binary.LittleEndian.Uint64)
}

func (b *Reader) ReadInt64() (int64, error) {
	return readFixed(b, 8, func(bs []byte) int64 {
		return int64(binary.LittleEndian.Uint64(bs))
	})
}

// ReadVarLength reads an unsigned length encoded in 7 bit chunks,
// little endian, with bit 7 set in all but the last byte.
func (b *Reader) ReadVarLength() (int, error) {
	length := uint64(0)
	for i := 0; i < maxVarIntBytes; i++ {
		c, err := b.ReadByte()
		if err != nil {
			return 0, errors.Wrap(err, "ReadVarLength error")
		}
		length |= uint64(c&0x7F) << (7 * i)
		if c&0x80 == 0 {
			if length > 0x7FFFFFFF {
				return 0, errors.Wrapf(ErrInvalidEncoding, "ReadVarLength error: length %d out of range", length)
			}
			return int(length), nil
		}
	}
	return 0, errors.Wrapf(
		ErrInvalidEncoding,
		"ReadVarLength error: more than %d length bytes at offset %d",
		maxVarIntBytes, b.offset,
	)
}

// ReadVarString reads a length-prefixed UTF-8 string.
func (b *Reader) ReadVarString() (string, error) {
	length, err := b.ReadVarLength()
	if err != nil {
		return "", errors.Wrap(err, "ReadVarString error: read length")
	}
	bs, err := b.ReadBytes(length)
	if err != nil {
		return "", errors.Wrap(err, "ReadVarString error: read payload")
	}
	if !utf8.Valid(bs) {
		return "", errors.Wrapf(ErrInvalidEncoding, "ReadVarString error: %d bytes ending at offset %d", length, b.offset)
	}
	return string(bs), nil
}

func truncated(err error, wanted int, got int, offset int64) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Wrapf(ErrTruncated, "wanted %d bytes, got %d at offset %d", wanted, got, offset)
	}
	return err
}
