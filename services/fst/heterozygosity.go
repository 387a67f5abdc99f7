package fst

import (
	"errors"
	"fmt"
	"math"
	"popdiff/api/models"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrNoSamples         = errors.New("no allele frequency samples provided")
	ErrMissingPopulation = errors.New("population has no frequency at snp")
)

type frequencyPair struct {
	rf float64
	af float64
}

// CalculatePairwiseFst estimates FST for every unordered population pair
// with the heterozygosity method: per SNP, Ht = 2·avgRF·avgAF over all
// populations, Hs is the mean of the pair's 2·RF·AF and FST = (Ht-Hs)/Ht.
// SNPs with Ht = 0 are left out of the pair's mean. The diagonal is unset.
//
// Only the first (RF, AF) seen for a SNP/population is used. Populations
// are taken from the first SNP, in order of appearance.
func CalculatePairwiseFst(samples []models.FrequencySample) (*Matrix, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	var (
		snpOrder    []string
		populations []string
		freqs       = map[string]map[string]frequencyPair{}
	)
	for _, s := range samples {
		bySnp, ok := freqs[s.Snp]
		if !ok {
			bySnp = map[string]frequencyPair{}
			freqs[s.Snp] = bySnp
			snpOrder = append(snpOrder, s.Snp)
		}
		if _, seen := bySnp[s.Population]; seen {
			continue
		}
		bySnp[s.Population] = frequencyPair{rf: s.Rf, af: s.Af}

		if s.Snp == snpOrder[0] {
			populations = append(populations, s.Population)
		}
	}

	// Ht and each population's Hs only depend on the SNP
	ht := make([]float64, len(snpOrder))
	hs := make([][]float64, len(snpOrder))
	for k, snp := range snpOrder {
		var sumRf, sumAf float64
		hs[k] = make([]float64, len(populations))
		for p, pop := range populations {
			f, ok := freqs[snp][pop]
			if !ok {
				return nil, fmt.Errorf("%w: %s at %s", ErrMissingPopulation, pop, snp)
			}
			sumRf += f.rf
			sumAf += f.af
			hs[k][p] = 2 * f.rf * f.af
		}
		n := float64(len(populations))
		ht[k] = 2 * (sumRf / n) * (sumAf / n)
	}

	matrix := NewMatrix(populations)
	for i := 0; i < len(populations); i++ {
		for j := i + 1; j < len(populations); j++ {
			perSnp := make([]float64, 0, len(snpOrder))
			for k := range snpOrder {
				perSnp = append(perSnp, HeterozygosityFst(ht[k], (hs[k][i]+hs[k][j])/2))
			}

			if err := matrix.Set(populations[i], populations[j], nanMean(perSnp)); err != nil {
				return nil, err
			}
		}
	}

	return matrix, nil
}

// HeterozygosityFst is (ht-hs)/ht, NaN when ht is 0.
func HeterozygosityFst(ht float64, hs float64) float64 {
	if ht == 0 {
		return math.NaN()
	}
	return (ht - hs) / ht
}

func nanMean(values []float64) float64 {
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return math.NaN()
	}
	return stat.Mean(kept, nil)
}
