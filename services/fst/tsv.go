package fst

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// WriteTSV saves the matrix as a tab-separated table with a leading empty
// header cell, values formatted %.3f and unset cells left empty. The
// parent directory is created when missing. The absolute path is returned.
func WriteTSV(path string, m *Matrix) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	resultDir := filepath.Dir(absPath)
	if _, statErr := os.Stat(resultDir); os.IsNotExist(statErr) {
		if err := os.MkdirAll(resultDir, 0755); err != nil {
			return "", fmt.Errorf("creating results directory: %w", err)
		}
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := EncodeTSV(f, m); err != nil {
		return "", err
	}

	return absPath, f.Close()
}

// EncodeTSV writes the table through a string-typed dataframe so cells
// keep their %.3f formatting and NaN stays an empty cell.
func EncodeTSV(w io.Writer, m *Matrix) error {
	records := make([][]string, 0, m.Len()+1)
	records = append(records, append([]string{""}, m.Populations...))

	for i, pop := range m.Populations {
		row := make([]string, 0, m.Len()+1)
		row = append(row, pop)
		for j := range m.Populations {
			v := m.AtIndex(i, j)
			if math.IsNaN(v) {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.FormatFloat(v, 'f', 3, 64))
		}
		records = append(records, row)
	}

	// no header: the leading empty cell would be renamed by gota
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
	if df.Err != nil {
		return fmt.Errorf("building fst table: %w", df.Err)
	}

	// Records() leads with gota's generated column names
	for _, row := range df.Records()[1:] {
		if _, err := io.WriteString(w, strings.Join(row, "\t")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func ReadTSV(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeTSV(f)
}

func DecodeTSV(r io.Reader) (*Matrix, error) {
	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter('\t'),
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
	if df.Err != nil {
		return nil, fmt.Errorf("reading fst table: %w", df.Err)
	}

	rows := df.Records()[1:]
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty fst table")
	}

	populations := rows[0][1:]
	m := NewMatrix(populations)

	for _, row := range rows[1:] {
		for j, cell := range row[1:] {
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %q: %w", row[0], err)
			}
			if err := m.Set(row[0], populations[j], v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
