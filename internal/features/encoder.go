package features

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownLabel is returned when transforming a label the encoder was not
// fitted on.
var ErrUnknownLabel = errors.New("unknown categorical label")

// LabelEncoder maps categorical string labels to ordinal codes. Fitting
// assigns codes by sorted order of the distinct observed labels. Note that a
// per-batch fit means the same label can receive a different code across
// batches; serving freezes the mapping in a model manifest codebook instead
// (see the predict package).
type LabelEncoder struct {
	classes []string
	index   map[string]int
}

// NewLabelEncoder creates an unfitted encoder.
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{index: make(map[string]int)}
}

// NewLabelEncoderFromCodebook creates an encoder with a frozen label-to-code
// mapping, typically loaded from a model manifest.
func NewLabelEncoderFromCodebook(codebook map[string]int) *LabelEncoder {
	e := &LabelEncoder{index: make(map[string]int, len(codebook))}
	type pair struct {
		label string
		code  int
	}
	pairs := make([]pair, 0, len(codebook))
	for label, code := range codebook {
		pairs = append(pairs, pair{label, code})
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].code < pairs[b].code })
	for _, p := range pairs {
		e.classes = append(e.classes, p.label)
		e.index[p.label] = p.code
	}
	return e
}

// Fit learns the label set from the observed values.
func (e *LabelEncoder) Fit(vals []string) {
	seen := make(map[string]bool, len(vals))
	e.classes = e.classes[:0]
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			e.classes = append(e.classes, v)
		}
	}
	sort.Strings(e.classes)
	e.index = make(map[string]int, len(e.classes))
	for i, c := range e.classes {
		e.index[c] = i
	}
}

// Transform converts labels to their codes. Unseen labels are an error.
func (e *LabelEncoder) Transform(vals []string) ([]float64, error) {
	out := make([]float64, len(vals))
	for i, v := range vals {
		code, ok := e.index[v]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, v)
		}
		out[i] = float64(code)
	}
	return out, nil
}

// FitTransform fits the encoder on vals and returns their codes.
func (e *LabelEncoder) FitTransform(vals []string) []float64 {
	e.Fit(vals)
	out, _ := e.Transform(vals)
	return out
}

// Classes returns the learned labels in code order.
func (e *LabelEncoder) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}
