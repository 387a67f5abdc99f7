package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"popdiff/api/models"
	"popdiff/api/models/constants"
	palettes "popdiff/api/models/constants/palette"
	"popdiff/api/repositories/sqlstore"
	"popdiff/api/services/fst"
	"popdiff/api/services/heatmap"
)

var ErrNoAlleleData = errors.New("no allele data for the requested populations")

type (
	AnalysisService struct {
		Config *models.Config
		Store  *sqlstore.Store
	}

	CountFstResult struct {
		Gene      string
		Records   []models.FstRecord
		Matrix    *fst.Matrix
		ImageFile string
	}

	HeterozygosityFstResult struct {
		Matrix   *fst.Matrix
		Image    string
		FilePath string
	}
)

func NewAnalysisService(cfg *models.Config) *AnalysisService {
	return &AnalysisService{
		Config: cfg,
		Store:  sqlstore.NewStore(cfg),
	}
}

// CountFst runs the count-based method for each gene and saves one heatmap
// per gene under the heatmap directory. Genes without any comparable pair
// yield ErrNoAlleleData.
func (a *AnalysisService) CountFst(ctx context.Context, genes []string, populations []string, pal constants.Palette) ([]CountFstResult, error) {
	records, err := fst.CalculateCountFst(ctx, populations, genes, a.Store)
	if err != nil {
		return nil, err
	}

	if pal == "" {
		pal = palettes.Coolwarm
	}

	results := make([]CountFstResult, 0, len(genes))
	for _, gene := range genes {
		matrix, err := fst.RecordsToMatrix(records, gene)
		if err != nil {
			return nil, err
		}
		if matrix.Len() == 0 {
			return nil, fmt.Errorf("%w: gene %s", ErrNoAlleleData, gene)
		}

		imageName, err := heatmap.SaveFile(a.Config.Artifacts.HeatmapDirectory, heatmap.FileName(gene), matrix, heatmap.Options{
			Title:   fmt.Sprintf("Pairwise FST between Populations for Gene %s", gene),
			Palette: pal,
		})
		if err != nil {
			return nil, fmt.Errorf("saving heatmap for %s: %w", gene, err)
		}

		geneRecords := make([]models.FstRecord, 0)
		for _, r := range records {
			if r.Gene == gene {
				geneRecords = append(geneRecords, r)
			}
		}

		results = append(results, CountFstResult{
			Gene:      gene,
			Records:   geneRecords,
			Matrix:    matrix,
			ImageFile: imageName,
		})
	}

	return results, nil
}

// PairwiseFst runs the heterozygosity method, inlines the heatmap as base64
// and writes the matrix to the results file.
func (a *AnalysisService) PairwiseFst(samples []models.FrequencySample, pal constants.Palette) (*HeterozygosityFstResult, error) {
	matrix, err := fst.CalculatePairwiseFst(samples)
	if err != nil {
		return nil, err
	}

	if pal == "" {
		pal = palettes.Viridis
	}

	img, err := heatmap.EncodeBase64(matrix, heatmap.Options{Title: "Pairwise FST Matrix", Palette: pal})
	if err != nil {
		return nil, err
	}

	outputFilePath, err := fst.WriteTSV(a.ResultsFilePath(), matrix)
	if err != nil {
		return nil, fmt.Errorf("saving pairwise fst results: %w", err)
	}
	fmt.Println("Final Output File Path:", outputFilePath)

	return &HeterozygosityFstResult{
		Matrix:   matrix,
		Image:    img,
		FilePath: outputFilePath,
	}, nil
}

// GenePairwiseFst assembles heterozygosity input for gene from the store.
func (a *AnalysisService) GenePairwiseFst(ctx context.Context, gene string, populations []string, pal constants.Palette) (*HeterozygosityFstResult, int, error) {
	samples, err := a.Store.GetFrequencySamplesByGene(ctx, gene, populations)
	if err != nil {
		return nil, 0, err
	}
	if len(samples) == 0 {
		return nil, 0, fmt.Errorf("%w: gene %s", ErrNoAlleleData, gene)
	}

	result, err := a.PairwiseFst(samples, pal)
	if err != nil {
		return nil, 0, err
	}
	return result, len(samples), nil
}

func (a *AnalysisService) ResultsFilePath() string {
	return filepath.Join(a.Config.Artifacts.ResultsDirectory, a.Config.Artifacts.ResultsFileName)
}
