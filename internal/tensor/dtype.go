// Package tensor provides the dense 2-D tensor type consumed by the layer
// contracts in this library.
package tensor

// Element is a constraint for supported tensor element types.
//
// Layers are generic over Element on both their input and output sides,
// which allows mixed-precision composition: for example float32 storage
// feeding a layer that accumulates in float64.
type Element interface {
	~float32 | ~float64
}

// DataType represents runtime type information for tensor elements.
type DataType int

// Supported element types.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// TypeOf returns the runtime DataType for the element type T.
func TypeOf[T Element]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported element type")
	}
}
