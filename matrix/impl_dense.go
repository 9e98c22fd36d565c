// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy views (RowView, MatrixView) and copy-based extraction (Row, Col, Induced).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View/RowView: O(1); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxApply   = "Apply"   // method tag used in error wrappers
	ctxView    = "View"    // ctor tag for Dense.View
	ctxInduce  = "Induced" // ctor/tag for Dense.Induced
	ctxRow     = "Row"
	ctxCol     = "Col"
	ctxFrom    = "NewDenseFrom"
	ctxFromRow = "FromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable "Dense.<method>(row,col): <sentinel>" shape; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: set numeric policy from resolved options.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - 0×n and n×0 matrices are legal and carry an empty buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newDense allocates r×c without option resolution; callers guarantee r,c >= 0.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: DefaultValidateNaNInf}
}

// NewDenseFrom builds an r×c matrix from a row-major slice (copied).
// Errors: ErrInvalidDimensions for negative sizes, ErrShapeMismatch when len(data) != r*c,
// ErrNaNInf when the policy is on and data carries a non-finite value.
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: want %d values, got %d: %w", ctxFrom, rows*cols, len(data), ErrShapeMismatch)
	}
	if m.validateNaNInf {
		for idx, v := range data {
			if isNonFinite(v) {
				return nil, fmt.Errorf("%s: index %d: %w", ctxFrom, idx, ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return m, nil
}

// FromRows builds a matrix from nested rows (dataset loading).
// All rows must share one length; otherwise ErrShapeMismatch.
// An empty outer slice yields a 0×0 matrix.
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRow, i, len(rows[i]), c, ErrShapeMismatch)
		}
		for j = 0; j < c; j++ {
			if m.validateNaNInf && isNonFinite(rows[i][j]) {
				return nil, denseErrorf(ctxFromRow, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns rows*cols.
func (m *Dense) Len() int { return len(m.data) }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange wrapped with coordinates.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange; ErrNaNInf when the policy is on and v is not finite.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy as a Matrix (interface contract).
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy returns a deep copy with the concrete type preserved.
// Complexity: O(r*c).
func (m *Dense) Copy() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// Raw returns a row-major copy of the elements (export).
func (m *Dense) Raw() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Data exposes the backing row-major slice without copying.
// Writes through the slice mutate m and bypass the NaN/Inf policy.
func (m *Dense) Data() []float64 { return m.data }

// ToRows exports the matrix as freshly allocated nested rows.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// RowView returns a non-owning Vector over row i. Mutations through the view
// are visible in m. The view is valid as long as m is.
// Errors: ErrOutOfRange.
func (m *Dense) RowView(i int) (*Vector, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.RowView(%d): %w", i, ErrOutOfRange)
	}
	lo, hi := i*m.c, (i+1)*m.c

	// Full slice expression caps the view so growth can never spill into row i+1.
	return &Vector{data: m.data[lo:hi:hi], validateNaNInf: m.validateNaNInf}, nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) (*Vector, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return &Vector{data: out, validateNaNInf: m.validateNaNInf}, nil
}

// Col returns a copy of column j. Columns are strided, so no view exists.
func (m *Dense) Col(j int) (*Vector, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxCol, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return &Vector{data: out, validateNaNInf: m.validateNaNInf}, nil
}

// SetRow copies v into row i. len(v) must equal Cols.
func (m *Dense) SetRow(i int, v *Vector) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("Dense.SetRow(%d): %w", i, ErrOutOfRange)
	}
	if err := ValidateVecLen(v, m.c); err != nil {
		return fmt.Errorf("Dense.SetRow(%d): %w", i, err)
	}
	copy(m.data[i*m.c:(i+1)*m.c], v.data)

	return nil
}

// SetCol copies v into column j. len(v) must equal Rows.
func (m *Dense) SetCol(j int, v *Vector) error {
	if j < 0 || j >= m.c {
		return fmt.Errorf("Dense.SetCol(%d): %w", j, ErrOutOfRange)
	}
	if err := ValidateVecLen(v, m.r); err != nil {
		return fmt.Errorf("Dense.SetCol(%d): %w", j, err)
	}
	var i int
	for i = 0; i < m.r; i++ {
		m.data[i*m.c+j] = v.data[i]
	}

	return nil
}

// Fill sets every element to v (in place).
func (m *Dense) Fill(v float64) {
	for idx := range m.data {
		m.data[idx] = v
	}
}

// Equal reports whether b has the same shape and every |m[i,j]-b[i,j]| <= tol.
// tol == 0 means exact equality. NaN never equals anything.
func (m *Dense) Equal(b *Dense, tol float64) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	tol = math.Abs(tol)
	for idx, v := range m.data {
		if !(math.Abs(v-b.data[idx]) <= tol) && v != b.data[idx] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// View returns a no-copy window into m with top-left (r0,c0) and size rows×cols.
// Errors: ErrOutOfRange when the window escapes m, ErrInvalidDimensions for negative sizes.
// Complexity: O(1).
func (m *Dense) View(r0, c0, rows, cols int) (*MatrixView, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrInvalidDimensions)
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrOutOfRange)
	}

	return &MatrixView{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Induced materializes a copy submatrix using explicit index sets.
// Duplicates in index sets are allowed (repeated rows/cols in the result).
// Errors: ErrOutOfRange (index outside bounds).
// Complexity: Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx)
	cp := len(colsIdx)
	res := newDense(rp, cp)
	res.validateNaNInf = m.validateNaNInf

	var i, j int
	var ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// MatrixView is a non-owning window into a Dense (shared storage).
// It does not implement Matrix: Clone would be ambiguous for a window.
type MatrixView struct {
	base *Dense // underlying storage owner
	r0   int    // top-left row offset in base
	c0   int    // top-left col offset in base
	r    int    // view height
	c    int    // view width
}

// Rows returns the number of rows in the view.
func (v *MatrixView) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *MatrixView) Cols() int { return v.c }

// At reads element (i,j) in the view or returns ErrOutOfRange.
func (v *MatrixView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)], nil
}

// Set writes element (i,j) in the view, honoring the base numeric policy.
func (v *MatrixView) Set(i, j int, val float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v.base.validateNaNInf && isNonFinite(val) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.base.data[(v.r0+i)*v.base.c+(v.c0+j)] = val // write through

	return nil
}

// Materialize copies the window into an independent Dense.
func (v *MatrixView) Materialize() *Dense {
	out := newDense(v.r, v.c)
	out.validateNaNInf = v.base.validateNaNInf
	var i int
	for i = 0; i < v.r; i++ {
		copy(out.data[i*v.c:(i+1)*v.c], v.base.data[(v.r0+i)*v.base.c+v.c0:(v.r0+i)*v.base.c+v.c0+v.c])
	}

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place.
// All new values are computed into scratch first; when the policy is on and
// any result is non-finite, ErrNaNInf is returned and m is left unchanged.
// Complexity: Time O(r*c), Space O(r*c) scratch.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	next := make([]float64, len(m.data))
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			next[base+j] = nv
		}
	}
	copy(m.data, next)

	return nil
}
