package values

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable rectangular grid of doubles stored in row-major order.
type Matrix struct {
	data []float64
	rows int
	cols int
}

// NewMatrix copies a rectangular two-dimensional slice into a new Matrix.
// Rows of unequal length fail with ErrShape. An empty outer slice yields a 0x0 matrix.
func NewMatrix(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("row %d has %d columns, row 0 has %d: %w", i, len(row), cols, ErrShape)
		}
		data = append(data, row...)
	}

	return Matrix{data: data, rows: len(rows), cols: cols}, nil
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return m.rows
}

// Columns returns the number of columns.
func (m Matrix) Columns() int {
	return m.cols
}

// IsSquare reports whether Rows equals Columns.
func (m Matrix) IsSquare() bool {
	return m.rows == m.cols
}

// At returns the element at row i, column j. It panics if either index is out of range.
func (m Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("values: index (%d, %d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Doubles returns a copy of the grid as a fresh two-dimensional slice.
func (m Matrix) Doubles() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
		copy(out[i], m.data[i*m.cols:(i+1)*m.cols])
	}
	return out
}

// Equal reports whether both matrices have the same shape and values.
// NaN equals NaN.
func (m Matrix) Equal(o Matrix) bool {
	return m.rows == o.rows && m.cols == o.cols && floats.Same(m.data, o.data)
}

// Dense returns an independent gonum matrix holding the values, or nil when
// either dimension is zero.
func (m Matrix) Dense() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return mat.NewDense(m.rows, m.cols, data)
}

func (m Matrix) String() string {
	return fmt.Sprintf("%v", m.Doubles())
}
