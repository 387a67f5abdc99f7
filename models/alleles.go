package models

import "math"

// AlleleCount is one (REF, ALT) row of the allele_frequency table for a
// single SNP of a gene in one population.
type AlleleCount struct {
	Ref float64 `json:"ref" db:"REF"`
	Alt float64 `json:"alt" db:"ALT"`
}

// FrequencySample is a single (SNP, population, RF, AF) observation
// consumed by the heterozygosity method.
type FrequencySample struct {
	Snp        string  `json:"snp" mapstructure:"snp"`
	Population string  `json:"population" mapstructure:"population"`
	Rf         float64 `json:"rf" mapstructure:"rf"`
	Af         float64 `json:"af" mapstructure:"af"`
}

type FstRecord struct {
	Gene        string  `json:"gene"`
	Population1 string  `json:"population1"`
	Population2 string  `json:"population2"`
	Fst         float64 `json:"fst"`
}

// FrequencyFromCounts normalizes a count row into reference/alternate
// frequencies. ok is false when the row carries no alleles.
func FrequencyFromCounts(ac AlleleCount) (rf float64, af float64, ok bool) {
	total := ac.Ref + ac.Alt
	if total == 0 || math.IsNaN(total) {
		return 0, 0, false
	}
	return ac.Ref / total, ac.Alt / total, true
}

// SnpRecord is a row of the snp table, mapping a position to its gene.
type SnpRecord struct {
	SnpId      string `json:"snpId" db:"snp_id" mapstructure:"snp_id"`
	Chromosome string `json:"chromosome" db:"chromosome" mapstructure:"chromosome"`
	Position   int64  `json:"position" db:"position" mapstructure:"position"`
	GeneName   string `json:"geneName" db:"gene_name" mapstructure:"gene_name"`
}

// AlleleFrequencyRecord is a row of the allele_frequency table.
type AlleleFrequencyRecord struct {
	Position       int64   `json:"position" db:"position" mapstructure:"position"`
	PopulationCode string  `json:"populationCode" db:"population_code" mapstructure:"population_code"`
	Ref            float64 `json:"ref" db:"REF" mapstructure:"REF"`
	Alt            float64 `json:"alt" db:"ALT" mapstructure:"ALT"`
}
