package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"popdiff/api/contexts"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func newContext(target string) (*contexts.PopDiffContext, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return &contexts.PopDiffContext{Context: e.NewContext(req, rec)}, rec
}

func noContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestMandateGeneAttribute(t *testing.T) {
	tests := []struct {
		target   string
		expected int
		gene     string
	}{
		{"/?gene=LCT", http.StatusNoContent, "LCT"},
		{"/?gene=%20HLA-A%20", http.StatusNoContent, "HLA-A"},
		{"/", http.StatusBadRequest, ""},
		{"/?gene=LCT;drop", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		c, rec := newContext(tt.target)
		assert.Nil(t, MandateGeneAttribute(noContent)(c))
		assert.Equal(t, tt.expected, rec.Code, tt.target)
		assert.Equal(t, tt.gene, c.Gene, tt.target)
	}
}

func TestMandatePopulationsAttribute(t *testing.T) {
	c, rec := newContext("/?populations=JPN,%20UK,JPN,,YRI")
	assert.Nil(t, MandatePopulationsAttribute(noContent)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"JPN", "UK", "YRI"}, c.Populations)

	c, rec = newContext("/?populations=")
	assert.Nil(t, MandatePopulationsAttribute(noContent)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newContext("/?populations=JPN,U-K")
	assert.Nil(t, MandatePopulationsAttribute(noContent)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMandatePopulationPair(t *testing.T) {
	c, rec := newContext("/?populations=JPN")
	assert.Nil(t, MandatePopulationsAttribute(MandatePopulationPair(noContent))(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newContext("/?populations=JPN,UK")
	assert.Nil(t, MandatePopulationsAttribute(MandatePopulationPair(noContent))(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAssignRequestId(t *testing.T) {
	c, rec := newContext("/")
	assert.Nil(t, AssignRequestId(noContent)(c))
	assert.NotEqual(t, uuid.Nil, c.RequestId)
	assert.Equal(t, c.RequestId.String(), rec.Header().Get("X-Request-Id"))

	given := uuid.New()
	c, rec = newContext("/")
	c.Request().Header.Set("X-Request-Id", given.String())
	assert.Nil(t, AssignRequestId(noContent)(c))
	assert.Equal(t, given, c.RequestId)

	c, _ = newContext("/")
	c.Request().Header.Set("X-Request-Id", "not-a-uuid")
	assert.Nil(t, AssignRequestId(noContent)(c))
	assert.NotEqual(t, "not-a-uuid", c.RequestId.String())
}
