package services

import (
	"context"
	"os"
	"path/filepath"
	"popdiff/api/models"
	"popdiff/api/services/fst"
	"popdiff/api/tests/common"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalysisService(t *testing.T) *AnalysisService {
	root := t.TempDir()

	cfg := common.InitConfig()
	cfg.Database.Path = filepath.Join(root, "ArchGenome.db")
	cfg.Artifacts.HeatmapDirectory = filepath.Join(root, "static", "heatmap")
	cfg.Artifacts.ResultsDirectory = filepath.Join(root, "Pop_diff_result")

	az := NewAnalysisService(cfg)
	require.NoError(t, az.Store.Seed(context.Background(), common.FixtureSnps, common.FixtureAlleleFrequencies))

	return az
}

func TestCountFst(t *testing.T) {
	az := newTestAnalysisService(t)

	t.Run("should save a heatmap per gene", func(t *testing.T) {
		results, err := az.CountFst(context.Background(), []string{"LCT"}, []string{"JPN", "UK"}, "")
		require.NoError(t, err)
		require.Len(t, results, 1)

		result := results[0]
		assert.Equal(t, "heatmap_LCT.png", result.ImageFile)
		assert.Len(t, result.Records, 4)
		assert.Equal(t, 0.0, result.Matrix.At("JPN", "JPN"))
		assert.Equal(t, result.Matrix.At("JPN", "UK"), result.Matrix.At("UK", "JPN"))

		_, err = os.Stat(filepath.Join(az.Config.Artifacts.HeatmapDirectory, result.ImageFile))
		assert.NoError(t, err)
	})

	t.Run("should fail for a gene without data", func(t *testing.T) {
		_, err := az.CountFst(context.Background(), []string{"NOPE"}, []string{"JPN", "UK"}, "")
		assert.ErrorIs(t, err, ErrNoAlleleData)
	})
}

func TestPairwiseFst(t *testing.T) {
	az := newTestAnalysisService(t)

	result, err := az.PairwiseFst([]models.FrequencySample{
		{Snp: "rs1", Population: "JPN", Rf: 0.9, Af: 0.1},
		{Snp: "rs1", Population: "UK", Rf: 1.0, Af: 0.0},
	}, "")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Image)
	assert.True(t, filepath.IsAbs(result.FilePath))
	assert.Equal(t, "pairwise_fst.txt", filepath.Base(result.FilePath))

	back, err := fst.ReadTSV(result.FilePath)
	require.NoError(t, err)
	assert.InDelta(t, 0.053, back.At("JPN", "UK"), 1e-9)

	t.Run("should assemble samples from the store", func(t *testing.T) {
		result, count, err := az.GenePairwiseFst(context.Background(), "LCT", []string{"JPN", "UK"}, "")
		require.NoError(t, err)
		assert.Equal(t, 4, count)
		assert.Equal(t, []string{"JPN", "UK"}, result.Matrix.Populations)
	})

	t.Run("should fail for a gene without data", func(t *testing.T) {
		_, _, err := az.GenePairwiseFst(context.Background(), "NOPE", []string{"JPN", "UK"}, "")
		assert.ErrorIs(t, err, ErrNoAlleleData)
	})
}
