package dtos

import (
	"popdiff/api/models"
	"popdiff/api/models/constants"
	"popdiff/api/services/fst"
	"time"

	"github.com/google/uuid"
)

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}
type GeneralError struct {
	Message string `json:"message"`
}

// -- --

type FstResponse struct {
	Status    int                 `json:"status"`
	Message   string              `json:"message"`
	RequestId uuid.UUID           `json:"requestId"`
	Method    constants.FstMethod `json:"method"`
}

// query path: summed counts by gene, heatmap saved as a static file
type CountFstResponseDTO struct {
	FstResponse
	Gene        string             `json:"gene"`
	Populations []string           `json:"populations"`
	Records     []models.FstRecord `json:"records"`
	Matrix      *fst.Matrix        `json:"matrix"`
	ImageFile   string             `json:"imageFile"`
	ImageUrl    string             `json:"imageUrl"`
}

// table path: heterozygosity method, heatmap inlined as base64
type HeterozygosityFstResponseDTO struct {
	FstResponse
	Gene        string      `json:"gene,omitempty"`
	Populations []string    `json:"populations"`
	SampleCount int         `json:"sampleCount"`
	Matrix      *fst.Matrix `json:"matrix"`
	Image       string      `json:"image"`
	FilePath    string      `json:"filePath"`
}
