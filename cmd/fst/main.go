// Command fst runs the pairwise FST analyses from the command line.
//
//	fst counts --gene LCT --populations JPN,UK,YRI
//	fst table --input samples.tsv
//	fst seed --snps snps.tsv --alleles alleles.tsv
//
// Configuration comes from the POPDIFF_* environment, optionally overlaid
// by a TOML file given with --config.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"popdiff/api/models"
	"popdiff/api/models/constants"
	fstMethod "popdiff/api/models/constants/fst-method"
	palettes "popdiff/api/models/constants/palette"
	serviceInfo "popdiff/api/models/constants/service-info"
	"popdiff/api/services"
	"popdiff/api/services/heatmap"
	"popdiff/api/utils"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kingpin"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	app, c := newApp()

	if err := c.run(context.Background(), app, os.Args[1:]); err != nil {
		app.FatalIfError(err, "")
	}
}

type cli struct {
	configPath *string
	palette    *string

	counts *kingpin.CmdClause
	gene   *string
	pops   *string

	table *kingpin.CmdClause
	input *string

	seed    *kingpin.CmdClause
	snps    *string
	alleles *string
}

func newApp() (*kingpin.Application, *cli) {
	app := kingpin.New("fst", "Pairwise FST between populations")
	app.Version(string(serviceInfo.SERVICE_VERSION))

	c := &cli{}
	c.configPath = app.Flag("config", "TOML file overlaying the POPDIFF_* environment").Envar("POPDIFF_CONFIG").Default("").String()
	c.palette = app.Flag("palette", "heatmap palette (coolwarm|viridis)").Default("").String()

	c.counts = app.Command(string(fstMethod.Counts), "Count-based FST for a gene, saved as a heatmap")
	c.gene = c.counts.Flag("gene", "gene name").Required().String()
	c.pops = c.counts.Flag("populations", "comma-separated population codes").Required().String()

	c.table = app.Command("table", "Heterozygosity FST from a tab-separated snp/population/rf/af file")
	c.input = c.table.Flag("input", "samples file").Required().ExistingFile()

	c.seed = app.Command("seed", "Load snp and allele frequency tables into the database")
	c.snps = c.seed.Flag("snps", "snp_id/chromosome/position/gene_name file").Required().ExistingFile()
	c.alleles = c.seed.Flag("alleles", "position/population_code/REF/ALT file").Required().ExistingFile()

	return app, c
}

func (c *cli) run(ctx context.Context, app *kingpin.Application, args []string) error {
	command, err := app.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(*c.configPath)
	if err != nil {
		return err
	}
	az := services.NewAnalysisService(cfg)

	var pal constants.Palette
	if len(*c.palette) > 0 {
		pal = palettes.CastToPalette(*c.palette)
	}

	if command == c.seed.FullCommand() {
		return seed(ctx, az, *c.snps, *c.alleles)
	}

	switch fstMethod.CastToFstMethod(command) {
	case fstMethod.Counts:
		return counts(ctx, az, *c.gene, utils.SplitCommaSeparated(*c.pops), pal)
	case fstMethod.Heterozygosity:
		return table(az, *c.input, pal)
	}
	return fmt.Errorf("unknown command %q", command)
}

func loadConfig(configPath string) (*models.Config, error) {
	var cfg models.Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if len(configPath) > 0 {
		if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("reading %s: %w", configPath, err)
		}
	}

	return &cfg, nil
}

func counts(ctx context.Context, az *services.AnalysisService, gene string, populations []string, pal constants.Palette) error {
	if len(populations) == 0 {
		return errors.New("no population codes given")
	}

	results, err := az.CountFst(ctx, []string{gene}, populations, pal)
	if err != nil {
		return err
	}

	for _, result := range results {
		for _, r := range result.Records {
			fmt.Printf("%s\t%s\t%s\t%.3f\n", r.Gene, r.Population1, r.Population2, r.Fst)
		}
		fmt.Println("Heatmap:", result.ImageFile)
	}
	return nil
}

func table(az *services.AnalysisService, input string, pal constants.Palette) error {
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	samples, err := services.ReadFrequencySamples(f)
	if err != nil {
		return err
	}

	result, err := az.PairwiseFst(samples, pal)
	if err != nil {
		return err
	}

	if pal == "" {
		pal = palettes.Viridis
	}
	imageName, err := heatmap.SaveFile(az.Config.Artifacts.HeatmapDirectory, "pairwise_fst.png", result.Matrix, heatmap.Options{
		Title:   "Pairwise FST Matrix",
		Palette: pal,
	})
	if err != nil {
		return err
	}
	fmt.Println("Heatmap:", imageName)

	return nil
}

func seed(ctx context.Context, az *services.AnalysisService, snpsPath string, allelesPath string) error {
	snpsFile, err := os.Open(snpsPath)
	if err != nil {
		return err
	}
	defer snpsFile.Close()
	snpRecords, err := services.ReadSnpRecords(snpsFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", snpsPath, err)
	}

	allelesFile, err := os.Open(allelesPath)
	if err != nil {
		return err
	}
	defer allelesFile.Close()
	alleleRecords, err := services.ReadAlleleFrequencyRecords(allelesFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", allelesPath, err)
	}

	if err := az.Store.Seed(ctx, snpRecords, alleleRecords); err != nil {
		return err
	}
	fmt.Printf("Seeded %d snp(s) and %d allele frequency row(s) into %s\n", len(snpRecords), len(alleleRecords), az.Config.Database.Path)

	return nil
}
