package fst

import (
	"context"
	"fmt"
	"popdiff/api/models"

	"github.com/ahmetb/go-linq"
)

// AlleleCountLookup fetches the (REF, ALT) rows of a gene for each
// requested population. Every requested population must be present in the
// result, empty when the store has no rows for it.
type AlleleCountLookup interface {
	GetAlleleCountsByGene(ctx context.Context, gene string, populations []string) (map[string][]models.AlleleCount, error)
}

// CalculateCountFst compares summed REF/ALT counts for every ordered pair
// of populations (self-pairs included) of every gene. Pairs where either
// side has no data are reported and skipped.
func CalculateCountFst(ctx context.Context, populations []string, genes []string, lookup AlleleCountLookup) ([]models.FstRecord, error) {
	records := make([]models.FstRecord, 0, len(genes)*len(populations)*len(populations))

	for _, gene := range genes {
		alleleCounts, err := lookup.GetAlleleCountsByGene(ctx, gene, populations)
		if err != nil {
			return nil, fmt.Errorf("retrieving allele counts for gene %s: %w", gene, err)
		}

		for _, pop1 := range populations {
			for _, pop2 := range populations {
				counts1 := alleleCounts[pop1]
				counts2 := alleleCounts[pop2]

				if len(counts1) == 0 || len(counts2) == 0 {
					fmt.Printf("No variation in allele frequencies for Gene: %s, Populations: %s vs %s\n", gene, pop1, pop2)
					continue
				}

				value := CountFst(counts1, counts2)
				records = append(records, models.FstRecord{
					Gene:        gene,
					Population1: pop1,
					Population2: pop2,
					Fst:         value,
				})
				fmt.Printf("FST for Gene: %s, Populations: %s vs %s: %v\n", gene, pop1, pop2, value)
			}
		}
	}

	return records, nil
}

// CountFst is
//
//	((Σalt1-Σalt2)² + (Σref1-Σref2)²) / (2·(Σalt1+Σalt2)·(Σref1+Σref2))
//
// and 0 when the denominator is 0.
func CountFst(counts1 []models.AlleleCount, counts2 []models.AlleleCount) float64 {
	ref1, alt1 := sumCounts(counts1)
	ref2, alt2 := sumCounts(counts2)

	num := (alt1-alt2)*(alt1-alt2) + (ref1-ref2)*(ref1-ref2)
	den := (alt1 + alt2) * (ref1 + ref2)
	if den == 0 {
		return 0
	}

	return num / (2 * den)
}

func sumCounts(counts []models.AlleleCount) (ref float64, alt float64) {
	ref = linq.From(counts).SelectT(func(ac models.AlleleCount) float64 { return ac.Ref }).SumFloats()
	alt = linq.From(counts).SelectT(func(ac models.AlleleCount) float64 { return ac.Alt }).SumFloats()
	return
}
