package api

import (
	"fmt"
	"math"
	"net/http"
	"strings"
	"testing"

	"popdiff/api/models"
	common "popdiff/api/tests/common"
	"popdiff/api/utils"

	"github.com/stretchr/testify/assert"

	. "github.com/ahmetb/go-linq"
)

// These run against a live service seeded with the common fixtures; set
// api.url in test.config.yml to enable them.

type countFstResponse struct {
	RequestId   string             `json:"requestId"`
	Gene        string             `json:"gene"`
	Populations []string           `json:"populations"`
	Records     []models.FstRecord `json:"records"`
	ImageUrl    string             `json:"imageUrl"`
}

func skipWithoutServer(t *testing.T) *models.Config {
	cfg := common.InitConfig()
	if len(cfg.Api.Url) == 0 {
		t.Skip("api.url not configured")
	}
	return cfg
}

func TestCountFstAgainstService(t *testing.T) {
	cfg := skipWithoutServer(t)

	url := fmt.Sprintf(common.FstCountsPath, cfg.Api.Url, "LCT", "JPN,UK")
	dto, err := utils.GetRequestReturnStuff[countFstResponse](url)
	assert.Nil(t, err)

	assert.Equal(t, "LCT", dto.Gene)
	assert.Equal(t, []string{"JPN", "UK"}, dto.Populations)

	// ordered pairs, self-pairs included
	assert.Equal(t, 4, len(dto.Records))

	selfPairs := From(dto.Records).WhereT(func(r models.FstRecord) bool {
		return r.Population1 == r.Population2
	}).Count()
	assert.Equal(t, 2, selfPairs)

	From(dto.Records).ForEachT(func(r models.FstRecord) {
		assert.False(t, math.IsNaN(r.Fst))
		if r.Population1 == r.Population2 {
			assert.Equal(t, 0.0, r.Fst)
		}
	})

	// the heatmap is served statically
	response, err := http.Get(cfg.Api.Url + dto.ImageUrl)
	assert.Nil(t, err)
	defer response.Body.Close()
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "image/png", response.Header.Get("Content-Type"))
}

func TestPopulationsOverviewAgainstService(t *testing.T) {
	cfg := skipWithoutServer(t)

	overview, err := utils.GetRequestReturnStuff[map[string]interface{}](fmt.Sprintf(common.PopulationsOverviewPath, cfg.Api.Url))
	assert.Nil(t, err)

	populations := []string{}
	From(overview["populations"]).SelectT(func(p interface{}) string {
		return p.(string)
	}).ToSlice(&populations)

	for _, expected := range []string{"JPN", "UK", "YRI"} {
		assert.Contains(t, populations, expected)
	}
}

func TestPostHeterozygosityAgainstService(t *testing.T) {
	cfg := skipWithoutServer(t)

	response, err := http.Post(fmt.Sprintf(common.HeterozygosityCollectionsPath, cfg.Api.Url), "application/json",
		strings.NewReader(`[["rs1","JPN",0.9,0.1],["rs1","UK",1.0,0.0]]`))
	assert.Nil(t, err)
	defer response.Body.Close()
	assert.Equal(t, http.StatusOK, response.StatusCode)

	serviceInfo, err := utils.GetRequestReturnStuff[map[string]interface{}](fmt.Sprintf(common.ServiceInfoPath, cfg.Api.Url))
	assert.Nil(t, err)
	assert.NotEmpty(t, serviceInfo["version"])
}
