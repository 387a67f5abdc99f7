package fst

import (
	"context"
	"errors"
	"popdiff/api/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	genes map[string]map[string][]models.AlleleCount
	err   error
	calls int
}

func (f *fakeLookup) GetAlleleCountsByGene(_ context.Context, gene string, populations []string) (map[string][]models.AlleleCount, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := make(map[string][]models.AlleleCount, len(populations))
	for _, p := range populations {
		result[p] = append([]models.AlleleCount{}, f.genes[gene][p]...)
	}
	return result, nil
}

func TestCountFst(t *testing.T) {
	t.Run("should compute the summed count formula", func(t *testing.T) {
		a := []models.AlleleCount{{Ref: 10, Alt: 2}, {Ref: 5, Alt: 3}}
		b := []models.AlleleCount{{Ref: 4, Alt: 6}}

		// ref 15 vs 4, alt 5 vs 6
		expected := (1.0 + 121.0) / (2 * 11.0 * 19.0)
		assert.InDelta(t, expected, CountFst(a, b), 1e-12)
	})

	t.Run("should be zero for a self pair", func(t *testing.T) {
		a := []models.AlleleCount{{Ref: 7, Alt: 1}, {Ref: 3, Alt: 9}}
		assert.Equal(t, 0.0, CountFst(a, a))
	})

	t.Run("should be zero when the denominator is zero", func(t *testing.T) {
		a := []models.AlleleCount{{Ref: 0, Alt: 4}}
		b := []models.AlleleCount{{Ref: 0, Alt: 1}}
		assert.Equal(t, 0.0, CountFst(a, b))
	})

	t.Run("should be symmetric", func(t *testing.T) {
		a := []models.AlleleCount{{Ref: 12, Alt: 3}}
		b := []models.AlleleCount{{Ref: 2, Alt: 8}, {Ref: 1, Alt: 1}}
		assert.Equal(t, CountFst(a, b), CountFst(b, a))
	})
}

func TestCalculateCountFst(t *testing.T) {
	lookup := &fakeLookup{
		genes: map[string]map[string][]models.AlleleCount{
			"LCT": {
				"JPN": {{Ref: 90, Alt: 10}},
				"UK":  {{Ref: 40, Alt: 60}},
				"YRI": {{Ref: 70, Alt: 30}, {Ref: 20, Alt: 5}},
			},
			"EDAR": {
				"JPN": {{Ref: 30, Alt: 70}},
				// UK and YRI carry no rows
			},
			"FIXED": {
				"JPN": {{Ref: 0, Alt: 4}},
				"UK":  {{Ref: 0, Alt: 1}},
			},
		},
	}

	t.Run("should emit every ordered pair including self pairs", func(t *testing.T) {
		records, err := CalculateCountFst(context.Background(), []string{"JPN", "UK", "YRI"}, []string{"LCT"}, lookup)
		require.NoError(t, err)
		assert.Len(t, records, 9)

		assert.Equal(t, models.FstRecord{Gene: "LCT", Population1: "JPN", Population2: "JPN", Fst: 0}, records[0])
		assert.Equal(t, "UK", records[1].Population2)
		assert.Equal(t, "YRI", records[2].Population2)

		for _, r := range records {
			if r.Population1 == r.Population2 {
				assert.Equal(t, 0.0, r.Fst)
			}
		}
	})

	t.Run("should skip pairs where a population has no data", func(t *testing.T) {
		records, err := CalculateCountFst(context.Background(), []string{"JPN", "UK"}, []string{"EDAR"}, lookup)
		require.NoError(t, err)

		// only JPN vs JPN survives
		require.Len(t, records, 1)
		assert.Equal(t, "JPN", records[0].Population1)
		assert.Equal(t, "JPN", records[0].Population2)
	})

	t.Run("should keep zero denominator pairs as zero", func(t *testing.T) {
		records, err := CalculateCountFst(context.Background(), []string{"JPN", "UK"}, []string{"FIXED"}, lookup)
		require.NoError(t, err)

		require.Len(t, records, 4)
		for _, r := range records {
			assert.Equal(t, 0.0, r.Fst)
		}
	})

	t.Run("should query once per gene", func(t *testing.T) {
		lookup.calls = 0
		_, err := CalculateCountFst(context.Background(), []string{"JPN"}, []string{"LCT", "EDAR"}, lookup)
		require.NoError(t, err)
		assert.Equal(t, 2, lookup.calls)
	})

	t.Run("should surface lookup failures", func(t *testing.T) {
		boom := errors.New("database is locked")
		_, err := CalculateCountFst(context.Background(), []string{"JPN"}, []string{"LCT"}, &fakeLookup{err: boom})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("should pivot into a symmetric matrix", func(t *testing.T) {
		records, err := CalculateCountFst(context.Background(), []string{"UK", "JPN", "YRI"}, []string{"LCT"}, lookup)
		require.NoError(t, err)

		m, err := RecordsToMatrix(records, "LCT")
		require.NoError(t, err)

		assert.Equal(t, []string{"JPN", "UK", "YRI"}, m.Populations)
		for _, a := range m.Populations {
			for _, b := range m.Populations {
				assert.Equal(t, m.At(a, b), m.At(b, a))
			}
		}
		assert.Equal(t, 0.0, m.At("UK", "UK"))
		assert.InDelta(t, CountFst(lookup.genes["LCT"]["JPN"], lookup.genes["LCT"]["UK"]), m.At("JPN", "UK"), 1e-12)
	})
}
