package tensor

import "fmt"

// Dense is a row-major 2-D tensor with a feature dimension (rows) and a
// batch/sample dimension (columns).
//
// Dense values are caller-owned: layer operations read their input tensors
// and write to a separate caller-supplied output handle; they never retain a
// reference past the call. A Dense is safe for concurrent reads, but a
// handle being written to must be exclusively owned by the writing
// goroutine.
type Dense[T Element] struct {
	data   []T
	rows   int // feature dimension
	cols   int // batch dimension
	stride int // elements per row; equals cols for a packed layout
}

// NewDense allocates a rows×cols tensor initialized to zero.
func NewDense[T Element](rows, cols int) (*Dense[T], error) {
	if err := (Shape{rows, cols}).Validate(); err != nil {
		return nil, fmt.Errorf("invalid tensor shape: %w", err)
	}
	return &Dense[T]{
		data:   make([]T, rows*cols),
		rows:   rows,
		cols:   cols,
		stride: cols,
	}, nil
}

// FromSlice creates a rows×cols tensor from row-major data.
// The slice is copied into the tensor's memory.
func FromSlice[T Element](data []T, rows, cols int) (*Dense[T], error) {
	d, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("shape (%d, %d) requires %d elements, but got %d",
			rows, cols, rows*cols, len(data))
	}
	copy(d.data, data)
	return d, nil
}

// Dims returns the tensor's dimensions as (rows, cols).
func (d *Dense[T]) Dims() (rows, cols int) {
	return d.rows, d.cols
}

// Rows returns the feature dimension.
func (d *Dense[T]) Rows() int {
	return d.rows
}

// Cols returns the batch dimension.
func (d *Dense[T]) Cols() int {
	return d.cols
}

// Shape returns the tensor's shape as Shape{rows, cols}.
func (d *Dense[T]) Shape() Shape {
	return Shape{d.rows, d.cols}
}

// NumElements returns the total number of elements.
func (d *Dense[T]) NumElements() int {
	return d.rows * d.cols
}

// DType returns the tensor's element type.
func (d *Dense[T]) DType() DataType {
	return TypeOf[T]()
}

// At returns the element at feature row i, batch column j.
func (d *Dense[T]) At(i, j int) T {
	return d.data[i*d.stride+j]
}

// Set stores v at feature row i, batch column j.
func (d *Dense[T]) Set(i, j int, v T) {
	d.data[i*d.stride+j] = v
}

// Resize sets the tensor to rows×cols, reusing the backing array when it has
// sufficient capacity and reallocating otherwise. Element values after
// Resize are unspecified; callers are expected to overwrite every element.
func (d *Dense[T]) Resize(rows, cols int) error {
	if err := (Shape{rows, cols}).Validate(); err != nil {
		return fmt.Errorf("invalid resize shape: %w", err)
	}
	n := rows * cols
	if cap(d.data) >= n {
		d.data = d.data[:n]
	} else {
		d.data = make([]T, n)
	}
	d.rows = rows
	d.cols = cols
	d.stride = cols
	return nil
}

// Data returns the tensor's row-major backing slice (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (d *Dense[T]) Data() []T {
	return d.data
}

// Clone returns a deep copy of the tensor.
func (d *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(d.data))
	copy(data, d.data)
	return &Dense[T]{data: data, rows: d.rows, cols: d.cols, stride: d.stride}
}

// Zero sets every element to zero.
func (d *Dense[T]) Zero() {
	clear(d.data)
}
