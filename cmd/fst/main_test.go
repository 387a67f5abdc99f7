package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func runWith(ctx context.Context, args ...string) error {
	app, c := newApp()
	return c.run(ctx, app, args)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	configPath := writeFile(t, dir, "popdiff.toml", fmt.Sprintf(`
[database]
driver = "sqlite3"
path = %q
connect_retries = 0

[artifacts]
heatmap_directory = %q
results_directory = %q
results_file_name = "pairwise_fst.txt"
`, filepath.Join(dir, "ArchGenome.db"), filepath.Join(dir, "heatmap"), filepath.Join(dir, "results")))

	snps := writeFile(t, dir, "snps.tsv", "snp_id\tchromosome\tposition\tgene_name\n"+
		"rs4988235\t2\t136608646\tLCT\n"+
		"rs182549\t2\t136616754\tLCT\n")
	alleles := writeFile(t, dir, "alleles.tsv", "position\tpopulation_code\tREF\tALT\n"+
		"136608646\tJPN\t90\t10\n"+
		"136608646\tUK\t30\t70\n"+
		"136616754\tJPN\t80\t20\n"+
		"136616754\tUK\t50\t50\n")
	samples := writeFile(t, dir, "samples.tsv", "# exported allele frequencies\n"+
		"snp\tpopulation\trf\taf\n"+
		"rs1\tJPN\t0.9\t0.1\n"+
		"rs1\tUK\t1.0\t0.0\n")

	require.NoError(t, runWith(ctx, "seed", "--config", configPath, "--snps", snps, "--alleles", alleles))

	require.NoError(t, runWith(ctx, "counts", "--config", configPath, "--gene", "LCT", "--populations", "JPN,UK"))
	assert.FileExists(t, filepath.Join(dir, "heatmap", "heatmap_LCT.png"))

	require.NoError(t, runWith(ctx, "table", "--config", configPath, "--input", samples, "--palette", "coolwarm"))
	assert.FileExists(t, filepath.Join(dir, "results", "pairwise_fst.txt"))
	assert.FileExists(t, filepath.Join(dir, "heatmap", "pairwise_fst.png"))

	t.Run("should reject unknown commands", func(t *testing.T) {
		assert.Error(t, runWith(ctx, "plot", "--config", configPath))
		assert.Error(t, runWith(ctx))
	})

	t.Run("should require flags", func(t *testing.T) {
		assert.Error(t, runWith(ctx, "counts", "--config", configPath, "--gene", "LCT"))
		assert.Error(t, runWith(ctx, "table", "--config", configPath))
		assert.Error(t, runWith(ctx, "seed", "--config", configPath, "--snps", snps))
		assert.Error(t, runWith(ctx, "table", "--config", configPath, "--input", filepath.Join(dir, "missing.tsv")))
		assert.Error(t, runWith(ctx, "counts", "--config", configPath, "--gene", "LCT", "--populations", ","))
	})
}
