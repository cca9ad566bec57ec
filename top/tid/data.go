// Package tid decodes PocketTopo station identifiers.
package tid

type (
	// ID is one of three station forms packed into a single 32-bit field.
	// The zero value is Undefined.
	ID struct {
		kind   Kind
		number int64
		major  uint16
		minor  uint16
	}
	Kind uint8
)

const (
	KindUndefined = Kind(iota)
	KindNumeric
	KindComposite
)

const (
	undefinedValue = uint32(0x80000000)
	numericOffset  = int64(0x80000001)
)
