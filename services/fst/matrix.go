package fst

import (
	"encoding/json"
	"fmt"
	"math"
	"popdiff/api/models"

	"github.com/ahmetb/go-linq"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a square FST table indexed by population code. It is always
// symmetric: setting [a][b] sets [b][a]. Cells that were never set hold NaN.
type Matrix struct {
	Populations []string

	index  map[string]int
	values *mat.SymDense
}

func NewMatrix(populations []string) *Matrix {
	m := &Matrix{
		Populations: append([]string(nil), populations...),
		index:       make(map[string]int, len(populations)),
	}
	for i, p := range m.Populations {
		m.index[p] = i
	}

	n := len(m.Populations)
	if n == 0 {
		// mat refuses zero-sized matrices
		return m
	}

	data := make([]float64, n*n)
	for i := range data {
		data[i] = math.NaN()
	}
	m.values = mat.NewSymDense(n, data)

	return m
}

func (m *Matrix) Len() int {
	return len(m.Populations)
}

func (m *Matrix) Index(population string) (int, bool) {
	i, ok := m.index[population]
	return i, ok
}

func (m *Matrix) Set(a string, b string, v float64) error {
	i, ok := m.index[a]
	if !ok {
		return fmt.Errorf("unknown population %q", a)
	}
	j, ok := m.index[b]
	if !ok {
		return fmt.Errorf("unknown population %q", b)
	}
	m.values.SetSym(i, j, v)
	return nil
}

// At returns NaN for unknown populations and unset cells.
func (m *Matrix) At(a string, b string) float64 {
	i, iOk := m.index[a]
	j, jOk := m.index[b]
	if !iOk || !jOk {
		return math.NaN()
	}
	return m.values.At(i, j)
}

func (m *Matrix) AtIndex(i int, j int) float64 {
	return m.values.At(i, j)
}

// Rows returns a copy of the matrix as nested slices, row-major in
// Populations order.
func (m *Matrix) Rows() [][]float64 {
	n := m.Len()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = m.values.At(i, j)
		}
	}
	return rows
}

// MarshalJSON renders NaN cells as null since JSON has no NaN literal.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	rows := m.Rows()
	values := make([][]*float64, len(rows))
	for i, row := range rows {
		values[i] = make([]*float64, len(row))
		for j := range row {
			if !math.IsNaN(row[j]) {
				v := row[j]
				values[i][j] = &v
			}
		}
	}

	populations := m.Populations
	if populations == nil {
		populations = []string{}
	}

	return json.Marshal(map[string]interface{}{
		"populations": populations,
		"values":      values,
	})
}

// RecordsToMatrix pivots the records of a single gene into a matrix with
// Population1 as rows and Population2 as columns. Labels are sorted.
func RecordsToMatrix(records []models.FstRecord, gene string) (*Matrix, error) {
	var labels []string
	linq.From(records).
		WhereT(func(r models.FstRecord) bool { return r.Gene == gene }).
		SelectManyT(func(r models.FstRecord) linq.Query {
			return linq.From([]string{r.Population1, r.Population2})
		}).
		Distinct().
		OrderByT(func(p string) string { return p }).
		ToSlice(&labels)

	m := NewMatrix(labels)
	for _, r := range records {
		if r.Gene != gene {
			continue
		}
		if err := m.Set(r.Population1, r.Population2, r.Fst); err != nil {
			return nil, err
		}
	}

	return m, nil
}
