// Copyright 2025 The crelu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nn provides the public API for the layers in the crelu library.
//
// Layers implement the Layer capability interface (Forward, Backward and a
// serialization hook) and are composed by an externally-owned graph
// executor. The library ships one layer variant, the concatenated rectified
// linear unit:
//
//	layer := nn.NewCReLU[float32, float32]()
//	err := layer.Forward(input, output)           // (F, B) -> (2F, B)
//	err = layer.Backward(input, gradOut, gradIn)  // (2F, B) grad -> (F, B)
package nn

import (
	"io"

	"github.com/grail-ml/crelu/internal/nn"
	"github.com/grail-ml/crelu/internal/serialization"
	"github.com/grail-ml/crelu/internal/tensor"
)

// Layer is the capability interface dispatched by the owning graph
// executor. Backward receives the same input tensor that produced the
// forward pass; layers never cache inputs.
type Layer[In, Out tensor.Element] = nn.Layer[In, Out]

// CReLU is a concatenated rectified linear unit. For an (F, B) input it
// produces a (2F, B) output: ReLU(x) stacked on ReLU(-x) along the feature
// dimension.
type CReLU[In, Out tensor.Element] = nn.CReLU[In, Out]

// NewCReLU creates a new CReLU layer.
//
// Example:
//
//	layer := nn.NewCReLU[float32, float32]()
func NewCReLU[In, Out tensor.Element]() *CReLU[In, Out] {
	return nn.NewCReLU[In, Out]()
}

// LayerRecord is the persisted form of a layer: a type/version tag plus
// optional parameters.
type LayerRecord = serialization.LayerRecord

// WriteRecords persists layer records for the owning graph's serialization
// protocol.
func WriteRecords(w io.Writer, layers []LayerRecord) error {
	return serialization.Write(w, layers)
}

// ReadRecords parses a record stream written by WriteRecords.
func ReadRecords(r io.Reader) ([]LayerRecord, error) {
	return serialization.Read(r)
}
