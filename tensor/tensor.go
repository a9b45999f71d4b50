// Copyright 2025 The crelu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the tensor types in the crelu
// library.
//
// The package defines the 2-D dense tensor consumed by the layer contracts:
//   - Dense[T]: row-major container with a feature dimension (rows) and a
//     batch dimension (columns)
//   - Element: generic constraint over supported element types
//   - Shape, DataType: core type definitions
//
// Example:
//
//	input, err := tensor.FromSlice([]float32{1, -2, 0}, 1, 3)
//	output, err := tensor.NewDense[float32](2, 3)
package tensor

import (
	"github.com/grail-ml/crelu/internal/tensor"
)

// Type aliases for public API

// Element is a constraint for supported tensor element types
// (float32, float64).
type Element = tensor.Element

// DataType represents the underlying element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{4, 16} represents 4 feature rows over a batch of 16.
type Shape = tensor.Shape

// Dense is a row-major 2-D tensor with a feature dimension (rows) and a
// batch dimension (columns).
type Dense[T Element] = tensor.Dense[T]

// Creation functions

// NewDense allocates a rows×cols tensor initialized to zero.
//
// Example:
//
//	t, err := tensor.NewDense[float32](4, 16)
func NewDense[T Element](rows, cols int) (*Dense[T], error) {
	return tensor.NewDense[T](rows, cols)
}

// FromSlice creates a rows×cols tensor from row-major data.
//
// Example:
//
//	t, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice[T Element](data []T, rows, cols int) (*Dense[T], error) {
	return tensor.FromSlice(data, rows, cols)
}
