// SPDX-License-Identifier: MIT

// Package matrix - Tensor3: channels × rows × cols stored as one flat buffer.
//
// Layout: element (k,i,j) lives at k*rows*cols + i*cols + j, so each channel is a
// contiguous row-major slab and Channel(k) can hand out a Dense over it without
// copying.
package matrix

import "fmt"

const (
	opT3Add   = "Tensor3.Add"
	opT3Sub   = "Tensor3.Sub"
	opT3Mul   = "Tensor3.MulElem"
	opT3From  = "FromMatrices"
	opT3SetCh = "Tensor3.SetChannel"
)

// Tensor3 is a dense three-dimensional array of float64.
type Tensor3 struct {
	ch, r, c       int
	data           []float64
	validateNaNInf bool
}

// NewTensor3 allocates a zero tensor. Any negative extent → ErrInvalidDimensions.
func NewTensor3(channels, rows, cols int, opts ...Option) (*Tensor3, error) {
	if channels < 0 || rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewTensor3(%d,%d,%d): %w", channels, rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Tensor3{
		ch: channels, r: rows, c: cols,
		data:           make([]float64, channels*rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// FromMatrices stacks congruent matrices as channels (copied).
// Errors: ErrNilMatrix, ErrShapeMismatch for differing shapes.
func FromMatrices(ms []*Dense) (*Tensor3, error) {
	if len(ms) == 0 {
		return &Tensor3{validateNaNInf: DefaultValidateNaNInf}, nil
	}
	if ms[0] == nil {
		return nil, matrixErrorf(opT3From, ErrNilMatrix)
	}
	r, c := ms[0].r, ms[0].c
	t := &Tensor3{ch: len(ms), r: r, c: c, data: make([]float64, len(ms)*r*c), validateNaNInf: ms[0].validateNaNInf}
	plane := r * c
	for k, m := range ms {
		if m == nil {
			return nil, matrixErrorf(opT3From, ErrNilMatrix)
		}
		if m.r != r || m.c != c {
			return nil, matrixErrorf(opT3From, fmt.Errorf("channel %d is %dx%d, want %dx%d: %w", k, m.r, m.c, r, c, ErrShapeMismatch))
		}
		copy(t.data[k*plane:(k+1)*plane], m.data)
	}

	return t, nil
}

// Channels returns the channel count.
func (t *Tensor3) Channels() int { return t.ch }

// Rows returns the per-channel row count.
func (t *Tensor3) Rows() int { return t.r }

// Cols returns the per-channel column count.
func (t *Tensor3) Cols() int { return t.c }

// Data exposes the flat backing buffer (channel-major).
func (t *Tensor3) Data() []float64 { return t.data }

func (t *Tensor3) offset(k, i, j int) (int, bool) {
	if k < 0 || k >= t.ch || i < 0 || i >= t.r || j < 0 || j >= t.c {
		return 0, false
	}

	return k*t.r*t.c + i*t.c + j, true
}

// At reads (k,i,j) or returns ErrOutOfRange.
func (t *Tensor3) At(k, i, j int) (float64, error) {
	off, ok := t.offset(k, i, j)
	if !ok {
		return 0, fmt.Errorf("Tensor3.At(%d,%d,%d): %w", k, i, j, ErrOutOfRange)
	}

	return t.data[off], nil
}

// Set writes (k,i,j). Errors: ErrOutOfRange, ErrNaNInf under the finite policy.
func (t *Tensor3) Set(k, i, j int, v float64) error {
	off, ok := t.offset(k, i, j)
	if !ok {
		return fmt.Errorf("Tensor3.Set(%d,%d,%d): %w", k, i, j, ErrOutOfRange)
	}
	if t.validateNaNInf && isNonFinite(v) {
		return fmt.Errorf("Tensor3.Set(%d,%d,%d): %w", k, i, j, ErrNaNInf)
	}
	t.data[off] = v

	return nil
}

// Channel returns a non-owning rows×cols Dense over channel k.
// Writes through it mutate t.
func (t *Tensor3) Channel(k int) (*Dense, error) {
	if k < 0 || k >= t.ch {
		return nil, fmt.Errorf("Tensor3.Channel(%d): %w", k, ErrOutOfRange)
	}
	plane := t.r * t.c
	lo, hi := k*plane, (k+1)*plane

	return &Dense{r: t.r, c: t.c, data: t.data[lo:hi:hi], validateNaNInf: t.validateNaNInf}, nil
}

// SetChannel copies m into channel k.
func (t *Tensor3) SetChannel(k int, m *Dense) error {
	if k < 0 || k >= t.ch {
		return fmt.Errorf("%s(%d): %w", opT3SetCh, k, ErrOutOfRange)
	}
	if m == nil {
		return matrixErrorf(opT3SetCh, ErrNilMatrix)
	}
	if m.r != t.r || m.c != t.c {
		return matrixErrorf(opT3SetCh, ErrShapeMismatch)
	}
	plane := t.r * t.c
	copy(t.data[k*plane:(k+1)*plane], m.data)

	return nil
}

// Clone returns a deep copy.
func (t *Tensor3) Clone() *Tensor3 {
	out := make([]float64, len(t.data))
	copy(out, t.data)

	return &Tensor3{ch: t.ch, r: t.r, c: t.c, data: out, validateNaNInf: t.validateNaNInf}
}

// ToSlices exports the tensor as nested [channel][row][col] slices.
func (t *Tensor3) ToSlices() [][][]float64 {
	out := make([][][]float64, t.ch)
	var k, i, base int
	for k = 0; k < t.ch; k++ {
		out[k] = make([][]float64, t.r)
		for i = 0; i < t.r; i++ {
			base = k*t.r*t.c + i*t.c
			out[k][i] = make([]float64, t.c)
			copy(out[k][i], t.data[base:base+t.c])
		}
	}

	return out
}

func (t *Tensor3) sameShape(op string, u *Tensor3) error {
	if u == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	if t.ch != u.ch || t.r != u.r || t.c != u.c {
		return matrixErrorf(op, ErrShapeMismatch)
	}

	return nil
}

func (t *Tensor3) zip(op string, u *Tensor3, f func(a, b float64) float64) (*Tensor3, error) {
	if err := t.sameShape(op, u); err != nil {
		return nil, err
	}
	out := &Tensor3{ch: t.ch, r: t.r, c: t.c, data: make([]float64, len(t.data)), validateNaNInf: t.validateNaNInf}
	for idx := range t.data {
		out.data[idx] = f(t.data[idx], u.data[idx])
	}

	return out, nil
}

func (t *Tensor3) zipInPlace(op string, u *Tensor3, f func(a, b float64) float64) error {
	if err := t.sameShape(op, u); err != nil {
		return err
	}
	for idx := range t.data {
		t.data[idx] = f(t.data[idx], u.data[idx])
	}

	return nil
}

func add(a, b float64) float64 { return a + b }
func sub(a, b float64) float64 { return a - b }
func mul(a, b float64) float64 { return a * b }

// Add returns t + u channel-wise.
func (t *Tensor3) Add(u *Tensor3) (*Tensor3, error) { return t.zip(opT3Add, u, add) }

// Sub returns t - u channel-wise.
func (t *Tensor3) Sub(u *Tensor3) (*Tensor3, error) { return t.zip(opT3Sub, u, sub) }

// MulElem returns t ⊙ u.
func (t *Tensor3) MulElem(u *Tensor3) (*Tensor3, error) { return t.zip(opT3Mul, u, mul) }

// Scale returns α·t.
func (t *Tensor3) Scale(alpha float64) *Tensor3 {
	out := t.Clone()
	out.ScaleInPlace(alpha)

	return out
}

// AddInPlace sets t = t + u.
func (t *Tensor3) AddInPlace(u *Tensor3) error { return t.zipInPlace(opT3Add, u, add) }

// SubInPlace sets t = t - u.
func (t *Tensor3) SubInPlace(u *Tensor3) error { return t.zipInPlace(opT3Sub, u, sub) }

// MulElemInPlace sets t = t ⊙ u.
func (t *Tensor3) MulElemInPlace(u *Tensor3) error { return t.zipInPlace(opT3Mul, u, mul) }

// ScaleInPlace sets t = α·t.
func (t *Tensor3) ScaleInPlace(alpha float64) {
	for idx := range t.data {
		t.data[idx] *= alpha
	}
}

// Equal reports equal shape and element-wise |t-u| <= tol.
func (t *Tensor3) Equal(u *Tensor3, tol float64) bool {
	if t == nil || u == nil {
		return t == u
	}
	if t.ch != u.ch || t.r != u.r || t.c != u.c {
		return false
	}
	a := &Vector{data: t.data}

	return a.Equal(&Vector{data: u.data}, tol)
}
