package common

import (
	"fmt"
	"os"
	"path"
	"popdiff/api/models"
	"runtime"

	yaml "gopkg.in/yaml.v2"
)

const (
	FstCountsPath                 string = "%s/fst/counts?gene=%s&populations=%s"
	FstHeterozygosityPath         string = "%s/fst/heterozygosity?gene=%s&populations=%s"
	PopulationsOverviewPath       string = "%s/populations/overview"
	ServiceInfoPath               string = "%s/service-info"
	HeterozygosityCollectionsPath string = "%s/fst/heterozygosity"
)

var (
	FixtureSnps = []models.SnpRecord{
		{SnpId: "rs4988235", Chromosome: "2", Position: 136608646, GeneName: "LCT"},
		{SnpId: "rs182549", Chromosome: "2", Position: 136616754, GeneName: "LCT"},
		{SnpId: "rs3827760", Chromosome: "2", Position: 109513601, GeneName: "EDAR"},
	}
	FixtureAlleleFrequencies = []models.AlleleFrequencyRecord{
		{Position: 136608646, PopulationCode: "JPN", Ref: 90, Alt: 10},
		{Position: 136608646, PopulationCode: "UK", Ref: 30, Alt: 70},
		{Position: 136616754, PopulationCode: "JPN", Ref: 80, Alt: 20},
		{Position: 136616754, PopulationCode: "UK", Ref: 50, Alt: 50},
		{Position: 109513601, PopulationCode: "JPN", Ref: 10, Alt: 90},
		{Position: 109513601, PopulationCode: "YRI", Ref: 0, Alt: 0},
	}
)

func InitConfig() *models.Config {
	var cfg models.Config

	// get this file's path
	_, filename, _, _ := runtime.Caller(0)
	folderpath := path.Dir(filename)

	// retrieve common's test.config
	f, err := os.Open(fmt.Sprintf("%s/test.config.yml", folderpath))
	if err != nil {
		processError(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		processError(err)
	}

	return &cfg
}

func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}
