package fstMethod

import (
	"popdiff/api/models/constants"
	"strings"
)

const (
	Unknown constants.FstMethod = "Unknown"

	// summed REF/ALT counts per gene, ordered pairs incl. self-pairs
	Counts constants.FstMethod = "counts"
	// per-SNP (Ht - Hs) / Ht averaged over SNPs, unordered pairs
	Heterozygosity constants.FstMethod = "heterozygosity"
)

func CastToFstMethod(text string) constants.FstMethod {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "counts", "count":
		return Counts
	case "heterozygosity", "het", "table":
		return Heterozygosity
	default:
		return Unknown
	}
}
