// Package nn implements neural network layers for the crelu library.
//
// Layers are leaf nodes of an externally-owned directed acyclic graph: the
// graph executor sequences Forward and Backward calls across many layer
// variants and owns every tensor involved. Each variant is an independent
// implementation of the Layer capability interface, composed by the graph
// rather than inheriting from it.
package nn

import (
	"github.com/grail-ml/crelu/internal/serialization"
	"github.com/grail-ml/crelu/internal/tensor"
)

// Layer is the capability interface the owning graph executor dispatches
// across.
//
// Backward receives the same input tensor that produced the forward pass:
// layers do not cache their inputs, the caller retains them. This keeps
// layers free of hidden state and safe to invoke from multiple goroutines
// operating on independent tensors. Pairing each Backward call with the
// input of the matching Forward call is the graph's responsibility.
//
// Type parameters In and Out are the element types of the layer's input and
// output sides; they may differ for mixed-precision composition.
type Layer[In, Out tensor.Element] interface {
	// Forward computes the layer's output for input, resizing output to the
	// layer's output shape as needed.
	Forward(input *tensor.Dense[In], output *tensor.Dense[Out]) error

	// Backward computes the gradient with respect to input, given the input
	// that produced the forward pass and the upstream gradient gradOutput.
	// gradInput is resized to input's shape as needed.
	Backward(input *tensor.Dense[In], gradOutput, gradInput *tensor.Dense[Out]) error

	// Record returns the layer's persisted form for the owning graph's
	// serialization protocol.
	Record() serialization.LayerRecord
}
