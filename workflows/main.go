package workflows

import (
	c "popdiff/api/models/constants"
	fm "popdiff/api/models/constants/fst-method"
	p "popdiff/api/models/constants/palette"
)

type WorkflowSchema map[string]interface{}

// WORKFLOW_FST_SCHEMA describes the analyses the service runs and the
// inputs each one takes, for clients building request forms.
var WORKFLOW_FST_SCHEMA WorkflowSchema = map[string]interface{}{
	"analysis": map[string]interface{}{
		string(fm.Counts): map[string]interface{}{
			"name":        "Count-based Pairwise FST",
			"description": "Sums REF/ALT counts per population over a gene's SNPs and compares every ordered population pair, saving a heatmap image.",
			"tags":        []string{"fst", "gene"},
			"route":       "/fst/counts",
			"method":      "GET",
			"inputs": []map[string]interface{}{
				{
					"id":       "gene",
					"type":     "string",
					"required": true,
				},
				{
					"id":       "populations",
					"type":     "string[]",
					"required": true,
				},
				{
					"id":       "palette",
					"type":     "enum",
					"required": false,
					"values":   []c.Palette{p.Coolwarm, p.Viridis},
				},
			},
		},
		string(fm.Heterozygosity): map[string]interface{}{
			"name":        "Heterozygosity Pairwise FST",
			"description": "Averages (Ht - Hs) / Ht over SNPs for every population pair from allele frequency samples, returning an inline heatmap and a downloadable table.",
			"tags":        []string{"fst", "heterozygosity"},
			"route":       "/fst/heterozygosity",
			"method":      "GET|POST",
			"inputs": []map[string]interface{}{
				{
					"id":       "samples",
					"type":     "[snp, population, rf, af][]",
					"required": false,
				},
				{
					"id":       "gene",
					"type":     "string",
					"required": false,
				},
				{
					"id":       "populations",
					"type":     "string[]",
					"required": false,
				},
				{
					"id":       "palette",
					"type":     "enum",
					"required": false,
					"values":   []c.Palette{p.Viridis, p.Coolwarm},
				},
			},
		},
	},
}
