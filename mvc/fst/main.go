package fst

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"time"

	"popdiff/api/contexts"
	fstMethod "popdiff/api/models/constants/fst-method"
	"popdiff/api/models/dtos"
	e "popdiff/api/models/dtos/errors"
	"popdiff/api/mvc"
	"popdiff/api/services"
	fstService "popdiff/api/services/fst"

	"github.com/labstack/echo"
)

const HeatmapStaticPrefix = "/static/heatmap"

func GetCountFstByGene(c echo.Context) error {
	fmt.Printf("[%s] - GetCountFstByGene hit!\n", time.Now())
	gc := c.(*contexts.PopDiffContext)
	az, gene, populations, pal := mvc.RetrieveCommonElements(c)

	results, err := az.CountFst(c.Request().Context(), []string{gene}, populations, pal)
	if err != nil {
		return respondWithAnalysisError(c, err)
	}
	result := results[0]

	return c.JSON(http.StatusOK, dtos.CountFstResponseDTO{
		FstResponse: dtos.FstResponse{
			Status:    200,
			Message:   "Success",
			RequestId: gc.RequestId,
			Method:    fstMethod.Counts,
		},
		Gene:        gene,
		Populations: result.Matrix.Populations,
		Records:     result.Records,
		Matrix:      result.Matrix,
		ImageFile:   result.ImageFile,
		ImageUrl:    path.Join(HeatmapStaticPrefix, result.ImageFile),
	})
}

func GetHeterozygosityFstByGene(c echo.Context) error {
	fmt.Printf("[%s] - GetHeterozygosityFstByGene hit!\n", time.Now())
	gc := c.(*contexts.PopDiffContext)
	az, gene, populations, pal := mvc.RetrieveCommonElements(c)

	result, sampleCount, err := az.GenePairwiseFst(c.Request().Context(), gene, populations, pal)
	if err != nil {
		return respondWithAnalysisError(c, err)
	}

	return c.JSON(http.StatusOK, heterozygosityResponse(gc, gene, sampleCount, result))
}

func PostHeterozygosityFst(c echo.Context) error {
	fmt.Printf("[%s] - PostHeterozygosityFst hit!\n", time.Now())
	gc := c.(*contexts.PopDiffContext)
	_, _, _, pal := mvc.RetrieveCommonElements(c)

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest(err.Error()))
	}

	samples, err := services.ParseFrequencySamples(body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest(err.Error()))
	}

	result, err := gc.AnalysisService.PairwiseFst(samples, pal)
	if err != nil {
		return respondWithAnalysisError(c, err)
	}

	return c.JSON(http.StatusOK, heterozygosityResponse(gc, "", len(samples), result))
}

func DownloadResults(c echo.Context) error {
	fmt.Printf("[%s] - DownloadResults hit!\n", time.Now())
	gc := c.(*contexts.PopDiffContext)

	resultsPath := gc.AnalysisService.ResultsFilePath()
	if _, err := os.Stat(resultsPath); err != nil {
		return c.JSON(http.StatusNotFound, e.CreateSimpleNotFound("no pairwise fst results have been generated yet"))
	}

	return c.Attachment(resultsPath, path.Base(resultsPath))
}

func heterozygosityResponse(gc *contexts.PopDiffContext, gene string, sampleCount int, result *services.HeterozygosityFstResult) dtos.HeterozygosityFstResponseDTO {
	return dtos.HeterozygosityFstResponseDTO{
		FstResponse: dtos.FstResponse{
			Status:    200,
			Message:   "Success",
			RequestId: gc.RequestId,
			Method:    fstMethod.Heterozygosity,
		},
		Gene:        gene,
		Populations: result.Matrix.Populations,
		SampleCount: sampleCount,
		Matrix:      result.Matrix,
		Image:       result.Image,
		FilePath:    result.FilePath,
	}
}

func respondWithAnalysisError(c echo.Context, err error) error {
	fmt.Printf("Analysis failed: %v\n", err)

	switch {
	case errors.Is(err, services.ErrNoAlleleData):
		return c.JSON(http.StatusNotFound, e.CreateSimpleNotFound(err.Error()))
	case errors.Is(err, fstService.ErrNoSamples),
		errors.Is(err, fstService.ErrMissingPopulation):
		return c.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest(err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, e.CreateSimpleInternalServerError("Something went wrong... Please contact the administrator!"))
	}
}
