// Copyright 2026 go-dense Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dense

import "fmt"

// DenseMatrix is a fixed-shape mutable matrix over contiguous row-major
// float64 storage; element (i, j) lives at data[i*cols+j]. Row-major is the
// single layout convention of the whole module, including row and column
// extraction and every provider kernel.
//
// Like DenseVector it either owns its storage or, via WrapMatrix, aliases a
// caller-supplied buffer.
type DenseMatrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix returns a zero-filled rows x cols matrix.
// Either dimension below 1 returns ErrInvalidArgument.
func NewMatrix(rows, cols int) (*DenseMatrix, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("shape %dx%d: %w", rows, cols, ErrInvalidArgument)
	}
	return &DenseMatrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// WrapMatrix returns a rows x cols matrix aliasing buf, which must hold
// exactly rows*cols elements. The view does not own the buffer.
func WrapMatrix(rows, cols int, buf []float64) (*DenseMatrix, error) {
	if buf == nil {
		return nil, ErrNilOperand
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("shape %dx%d: %w", rows, cols, ErrInvalidArgument)
	}
	if len(buf) != rows*cols {
		return nil, fmt.Errorf("buffer length %d for shape %dx%d: %w", len(buf), rows, cols, ErrSizeMismatch)
	}
	return &DenseMatrix{rows: rows, cols: cols, data: buf}, nil
}

// FromRows builds a matrix copying the given rows, which must be non-empty
// and of equal length.
func FromRows(rows [][]float64) (*DenseMatrix, error) {
	if rows == nil {
		return nil, ErrNilOperand
	}
	if len(rows) < 1 || len(rows[0]) < 1 {
		return nil, fmt.Errorf("no data: %w", ErrInvalidArgument)
	}

	cols := len(rows[0])
	m := &DenseMatrix{rows: len(rows), cols: cols, data: make([]float64, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrSizeMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *DenseMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *DenseMatrix) Cols() int { return m.cols }

// RawSlice exposes the row-major backing storage without copying. The slice
// aliases the matrix.
func (m *DenseMatrix) RawSlice() []float64 { return m.data }

func (m *DenseMatrix) index(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("element (%d,%d) of %dx%d: %w", i, j, m.rows, m.cols, ErrIndexOutOfRange)
	}
	return i*m.cols + j, nil
}

// At returns the element at row i, column j.
func (m *DenseMatrix) At(i, j int) (float64, error) {
	idx, err := m.index(i, j)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// SetAt stores x at row i, column j.
func (m *DenseMatrix) SetAt(i, j int, x float64) error {
	idx, err := m.index(i, j)
	if err != nil {
		return err
	}
	m.data[idx] = x
	return nil
}

// Row returns an independent copy of row i as a vector.
func (m *DenseMatrix) Row(i int) (*DenseVector, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("row %d of %d: %w", i, m.rows, ErrIndexOutOfRange)
	}
	return FromSlice(m.data[i*m.cols : (i+1)*m.cols])
}

// Column returns an independent copy of column j as a vector.
func (m *DenseMatrix) Column(j int) (*DenseVector, error) {
	if j < 0 || j >= m.cols {
		return nil, fmt.Errorf("column %d of %d: %w", j, m.cols, ErrIndexOutOfRange)
	}
	data := make([]float64, m.rows)
	for i := range m.rows {
		data[i] = m.data[i*m.cols+j]
	}
	return &DenseVector{data: data}, nil
}

// SetRow overwrites row i with the elements of v.
func (m *DenseMatrix) SetRow(i int, v Vector) error {
	if isNilVector(v) {
		return ErrNilOperand
	}
	if i < 0 || i >= m.rows {
		return fmt.Errorf("row %d of %d: %w", i, m.rows, ErrIndexOutOfRange)
	}
	if v.Len() != m.cols {
		return fmt.Errorf("lengths %d and %d: %w", m.cols, v.Len(), ErrSizeMismatch)
	}

	if d, ok := v.(*DenseVector); ok {
		copy(m.data[i*m.cols:(i+1)*m.cols], d.data)
		return nil
	}
	for j := range m.cols {
		x, err := v.At(j)
		if err != nil {
			return err
		}
		m.data[i*m.cols+j] = x
	}
	return nil
}

// SetColumn overwrites column j with the elements of v.
func (m *DenseMatrix) SetColumn(j int, v Vector) error {
	if isNilVector(v) {
		return ErrNilOperand
	}
	if j < 0 || j >= m.cols {
		return fmt.Errorf("column %d of %d: %w", j, m.cols, ErrIndexOutOfRange)
	}
	if v.Len() != m.rows {
		return fmt.Errorf("lengths %d and %d: %w", m.rows, v.Len(), ErrSizeMismatch)
	}

	for i := range m.rows {
		x, err := v.At(i)
		if err != nil {
			return err
		}
		m.data[i*m.cols+j] = x
	}
	return nil
}

// NewOfSameKind returns a new zero-filled matrix of the given shape, dense
// like m. It mirrors Vector.NewOfLen for code generic over matrix sources.
func (m *DenseMatrix) NewOfSameKind(rows, cols int) (*DenseMatrix, error) {
	return NewMatrix(rows, cols)
}

// Clone returns an independent copy.
func (m *DenseMatrix) Clone() *DenseMatrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &DenseMatrix{rows: m.rows, cols: m.cols, data: data}
}

// CopyTo copies m's elements into dst, which must have the same shape.
// Copying onto the same storage is an identity no-op.
func (m *DenseMatrix) CopyTo(dst *DenseMatrix) error {
	if dst == nil {
		return ErrNilOperand
	}
	if dst.rows != m.rows || dst.cols != m.cols {
		return fmt.Errorf("shapes %dx%d and %dx%d: %w", m.rows, m.cols, dst.rows, dst.cols, ErrSizeMismatch)
	}
	if dst == m || sharesStorage(dst.data, m.data) {
		return nil
	}
	copy(dst.data, m.data)
	return nil
}

// Transpose returns a new matrix holding mᵀ.
func (m *DenseMatrix) Transpose() *DenseMatrix {
	t := &DenseMatrix{rows: m.cols, cols: m.rows, data: make([]float64, len(m.data))}
	for i := range m.rows {
		for j := range m.cols {
			t.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return t
}

// Mul returns the matrix product m * other via the provider.
func (m *DenseMatrix) Mul(other *DenseMatrix) (*DenseMatrix, error) {
	if other == nil {
		return nil, ErrNilOperand
	}
	if m.cols != other.rows {
		return nil, fmt.Errorf("inner dimensions %d and %d: %w", m.cols, other.rows, ErrSizeMismatch)
	}

	out := &DenseMatrix{rows: m.rows, cols: other.cols, data: make([]float64, m.rows*other.cols)}
	if err := Provider().MatMul(m.data, m.rows, m.cols, other.data, other.rows, other.cols, out.data); err != nil {
		return nil, err
	}
	return out, nil
}

// MulVec returns the matrix-vector product m * v as a new vector.
func (m *DenseMatrix) MulVec(v Vector) (*DenseVector, error) {
	if isNilVector(v) {
		return nil, ErrNilOperand
	}
	if v.Len() != m.cols {
		return nil, fmt.Errorf("lengths %d and %d: %w", m.cols, v.Len(), ErrSizeMismatch)
	}

	x, err := asDenseData(v)
	if err != nil {
		return nil, err
	}

	out := make([]float64, m.rows)
	if err := Provider().MatMul(m.data, m.rows, m.cols, x, m.cols, 1, out); err != nil {
		return nil, err
	}
	return &DenseVector{data: out}, nil
}

// asDenseData returns the flat storage of v, copying only when v is not
// dense.
func asDenseData(v Vector) ([]float64, error) {
	if d, ok := v.(*DenseVector); ok {
		return d.data, nil
	}
	data := make([]float64, v.Len())
	for i := range data {
		x, err := v.At(i)
		if err != nil {
			return nil, err
		}
		data[i] = x
	}
	return data, nil
}

// ToColumnMatrix materializes v as a new Len x 1 matrix copy.
func (v *DenseVector) ToColumnMatrix() *DenseMatrix {
	data := make([]float64, len(v.data))
	copy(data, v.data)
	return &DenseMatrix{rows: len(v.data), cols: 1, data: data}
}

// ToRowMatrix materializes v as a new 1 x Len matrix copy.
func (v *DenseVector) ToRowMatrix() *DenseMatrix {
	data := make([]float64, len(v.data))
	copy(data, v.data)
	return &DenseMatrix{rows: 1, cols: len(v.data), data: data}
}
