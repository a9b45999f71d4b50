package nn

import (
	"fmt"
	"math"

	"github.com/grail-ml/crelu/internal/serialization"
	"github.com/grail-ml/crelu/internal/tensor"
)

// RecordTypeCReLU is the type tag of persisted CReLU layer records.
const RecordTypeCReLU = "crelu"

// creluRecordVersion is bumped when persisted fields are added.
const creluRecordVersion = 1

// CReLU is a concatenated rectified linear unit.
//
// CReLU has two outputs, one ReLU and one negated ReLU, concatenated along
// the feature dimension: for an (F, B) input the output is (2F, B), with
// rows [0, F) holding max(x, 0) and rows [F, 2F) holding max(-x, 0).
// Doubling the feature dimension preserves both the positive and the
// negative phase of the input.
//
// For more information, see "Understanding and Improving Convolutional
// Neural Networks via Concatenated Rectified Linear Units" (Shang et al.,
// 2016), https://arxiv.org/abs/1603.05201.
//
// CReLU holds no parameters and both passes are pure given their arguments,
// so a single instance may be shared across goroutines as long as each
// output handle is exclusively owned by its writer.
type CReLU[In, Out tensor.Element] struct{}

// Compile-time interface checks.
var (
	_ Layer[float32, float32] = (*CReLU[float32, float32])(nil)
	_ Layer[float32, float64] = (*CReLU[float32, float64])(nil)
)

// NewCReLU creates a new CReLU layer.
func NewCReLU[In, Out tensor.Element]() *CReLU[In, Out] {
	return &CReLU[In, Out]{}
}

// Forward computes the concatenated rectification of input into output,
// resizing output to (2F, B) for an (F, B) input. output must not alias
// input.
//
// NaN input produces NaN in both branches: NaN is neither positive nor
// negative, and coercing it to zero would silently corrupt gradients
// downstream. ±Inf rectifies like any other value.
func (l *CReLU[In, Out]) Forward(input *tensor.Dense[In], output *tensor.Dense[Out]) error {
	if input == nil || output == nil {
		return fmt.Errorf("crelu forward: nil tensor")
	}

	rows, cols := input.Dims()
	if err := output.Resize(2*rows, cols); err != nil {
		return fmt.Errorf("crelu forward: resizing output: %w", err)
	}

	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			x := Out(input.At(i, j))
			if math.IsNaN(float64(x)) {
				output.Set(i, j, x)
				output.Set(i+rows, j, x)
				continue
			}
			var pos, neg Out
			if x > 0 {
				pos = x
			} else if x < 0 {
				neg = -x
			}
			output.Set(i, j, pos)
			output.Set(i+rows, j, neg)
		}
	}
	return nil
}

// Backward computes the gradient with respect to input. input must be the
// tensor previously given to Forward and gradOutput the (2F, B) upstream
// gradient, structured like the forward output: first F rows for the
// positive branch, last F rows for the negative branch. gradInput is
// resized to (F, B) and must not alias the other arguments.
//
// The sub-gradient at x == 0 is 0 in both branches, the standard ReLU
// convention applied once per branch. The negative branch negated its input
// before rectifying, so its contribution enters with a flipped sign. NaN
// input propagates to gradInput.
func (l *CReLU[In, Out]) Backward(input *tensor.Dense[In], gradOutput, gradInput *tensor.Dense[Out]) error {
	if input == nil || gradOutput == nil || gradInput == nil {
		return fmt.Errorf("crelu backward: nil tensor")
	}

	rows, cols := input.Dims()
	if gr, gc := gradOutput.Dims(); gr != 2*rows || gc != cols {
		return fmt.Errorf("crelu backward: gradOutput shape (%d, %d) does not match (%d, %d) expected for input shape (%d, %d)",
			gr, gc, 2*rows, cols, rows, cols)
	}
	if err := gradInput.Resize(rows, cols); err != nil {
		return fmt.Errorf("crelu backward: resizing gradInput: %w", err)
	}

	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			x := input.At(i, j)
			switch {
			case math.IsNaN(float64(x)):
				gradInput.Set(i, j, Out(math.NaN()))
			case x > 0:
				gradInput.Set(i, j, gradOutput.At(i, j))
			case x < 0:
				gradInput.Set(i, j, -gradOutput.At(i+rows, j))
			default:
				gradInput.Set(i, j, 0)
			}
		}
	}
	return nil
}

// Record returns the layer's persisted record: a type/version tag with no
// parameters.
func (l *CReLU[In, Out]) Record() serialization.LayerRecord {
	return serialization.LayerRecord{
		Type:    RecordTypeCReLU,
		Version: creluRecordVersion,
	}
}

// LoadRecord restores the layer from rec. Records written by a newer
// library version may carry additive parameters this version cannot honor
// and are rejected; current records hold no state to restore.
func (l *CReLU[In, Out]) LoadRecord(rec serialization.LayerRecord) error {
	if rec.Type != RecordTypeCReLU {
		return fmt.Errorf("crelu: cannot load record of type %q", rec.Type)
	}
	if rec.Version > creluRecordVersion {
		return fmt.Errorf("crelu: record version %d is newer than supported version %d",
			rec.Version, creluRecordVersion)
	}
	return nil
}
