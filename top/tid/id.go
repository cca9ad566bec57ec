package tid

import (
	"fmt"
	"strconv"

	"caveconv/ds"
	"caveconv/top/lbytes"
	"github.com/pkg/errors"
)

func Undefined() ID {
	return ID{}
}

func Numeric(number int64) ID {
	return ID{kind: KindNumeric, number: number}
}

func Composite(major uint16, minor uint16) ID {
	return ID{kind: KindComposite, major: major, minor: minor}
}

// Decode interprets a raw station field:
//
//	0x80000000: undefined
//	<0:         plain numbers + 0x80000001
//	>=0:        major<<16 | minor
func Decode(value uint32) ID {
	if value == undefinedValue {
		return Undefined()
	}
	if signed := int32(value); signed < 0 {
		return Numeric(int64(signed) + numericOffset)
	}
	return Composite(uint16(value>>16), uint16(value&0xFFFF))
}

func Read(reader *lbytes.Reader) (ID, error) {
	value, err := reader.ReadUint32()
	if err != nil {
		return ID{}, errors.Wrap(err, "tid.Read error")
	}
	return Decode(value), nil
}

func (id ID) Kind() Kind {
	return id.kind
}

func (id ID) IsUndefined() bool {
	return id.kind == KindUndefined
}

// Number is meaningful only for numeric ids.
func (id ID) Number() int64 {
	return id.number
}

// Parts is meaningful only for composite ids.
func (id ID) Parts() (major uint16, minor uint16) {
	return id.major, id.minor
}

// String renders the id the way survey tools name stations; undefined
// renders as the anonymous station "-".
func (id ID) String() string {
	switch id.kind {
	case KindUndefined:
		return "-"
	case KindNumeric:
		return strconv.FormatInt(id.number, 10)
	case KindComposite:
		return fmt.Sprintf("%d.%d", id.major, id.minor)
	default:
		panic(ds.ErrUnreachableCode{Caller: "tid.ID.String", Value: id.kind})
	}
}

func (id ID) MarshalText() ([]byte, error) {
	if id.IsUndefined() {
		return []byte{}, nil
	}
	return []byte(id.String()), nil
}

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNumeric:
		return "numeric"
	case KindComposite:
		return "composite"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}
