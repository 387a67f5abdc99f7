package services

import (
	"errors"
	"fmt"
	"io"
	"popdiff/api/models"
	"strings"

	"github.com/Jeffail/gabs"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/mitchellh/mapstructure"
)

var ErrMalformedSample = errors.New("malformed frequency sample")

var frequencySampleColumns = []string{"snp", "population", "rf", "af"}

// ParseFrequencySamples reads heterozygosity input from a JSON body. The
// samples are either 4-tuples, [["rs1","JPN",0.9,0.1], ...], or objects
// with snp/population/rf/af keys. Both may sit under a "samples" key.
func ParseFrequencySamples(body []byte) ([]models.FrequencySample, error) {
	jsonParsed, err := gabs.ParseJSON(body)
	if err != nil {
		return nil, fmt.Errorf("parsing samples: %w", err)
	}
	if _, isObject := jsonParsed.Data().(map[string]interface{}); isObject && jsonParsed.Exists("samples") {
		jsonParsed = jsonParsed.S("samples")
	}

	if _, isArray := jsonParsed.Data().([]interface{}); !isArray {
		return nil, fmt.Errorf("%w: expected an array of samples", ErrMalformedSample)
	}

	children, err := jsonParsed.Children()
	if err != nil {
		return nil, fmt.Errorf("parsing samples: %w", err)
	}

	samples := make([]models.FrequencySample, 0, len(children))
	for i, child := range children {
		var (
			sample models.FrequencySample
			err    error
		)
		switch item := child.Data().(type) {
		case []interface{}:
			sample, err = sampleFromTuple(item)
		case map[string]interface{}:
			err = mapstructure.WeakDecode(item, &sample)
		default:
			err = fmt.Errorf("unexpected %T", item)
		}
		if err == nil {
			err = checkSample(sample)
		}
		if err != nil {
			return nil, fmt.Errorf("%w at index %d: %v", ErrMalformedSample, i, err)
		}

		samples = append(samples, sample)
	}

	return samples, nil
}

func sampleFromTuple(item []interface{}) (models.FrequencySample, error) {
	if len(item) != len(frequencySampleColumns) {
		return models.FrequencySample{}, fmt.Errorf("expected %d values, got %d", len(frequencySampleColumns), len(item))
	}

	row := make(map[string]interface{}, len(item))
	for i, column := range frequencySampleColumns {
		row[column] = item[i]
	}

	var sample models.FrequencySample
	err := mapstructure.WeakDecode(row, &sample)
	return sample, err
}

func checkSample(s models.FrequencySample) error {
	if strings.TrimSpace(s.Snp) == "" {
		return errors.New("missing snp")
	}
	if strings.TrimSpace(s.Population) == "" {
		return errors.New("missing population")
	}
	return nil
}

// ReadFrequencySamples reads tab-separated snp/population/rf/af rows. The
// first row is a header; columns are taken by position.
func ReadFrequencySamples(r io.Reader) ([]models.FrequencySample, error) {
	var samples []models.FrequencySample
	if err := decodeTSV(r, frequencySampleColumns, &samples); err != nil {
		return nil, err
	}
	for i, s := range samples {
		if err := checkSample(s); err != nil {
			return nil, fmt.Errorf("%w at row %d: %v", ErrMalformedSample, i+1, err)
		}
	}
	return samples, nil
}

func ReadSnpRecords(r io.Reader) ([]models.SnpRecord, error) {
	var records []models.SnpRecord
	err := decodeTSV(r, []string{"snp_id", "chromosome", "position", "gene_name"}, &records)
	return records, err
}

func ReadAlleleFrequencyRecords(r io.Reader) ([]models.AlleleFrequencyRecord, error) {
	var records []models.AlleleFrequencyRecord
	err := decodeTSV(r, []string{"position", "population_code", "REF", "ALT"}, &records)
	return records, err
}

// decodeTSV loads a headed, tab-separated table into a dataframe, renames
// its columns to the expected ones and lets mapstructure convert the rows
// into out. Lines starting with '#' are skipped.
func decodeTSV(r io.Reader, columns []string, out interface{}) error {
	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter('\t'),
		dataframe.WithComments('#'),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
	if df.Err != nil {
		return df.Err
	}

	if df.Ncol() != len(columns) {
		return fmt.Errorf("table has %d columns, expected %d (%s)", df.Ncol(), len(columns), strings.Join(columns, ", "))
	}
	if err := df.SetNames(columns...); err != nil {
		return err
	}

	rows := df.Maps()
	for _, row := range rows {
		for column, v := range row {
			if cell, ok := v.(string); ok {
				row[column] = strings.TrimSpace(cell)
			}
		}
	}

	return mapstructure.WeakDecode(rows, out)
}
