package serviceInfo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"popdiff/api/contexts"
	"popdiff/api/models"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func TestGetServiceInfo(t *testing.T) {
	cfg := &models.Config{SemVer: "1.2.3"}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := &contexts.PopDiffContext{
		Context: e.NewContext(httptest.NewRequest(http.MethodGet, "/service-info", nil), rec),
		Config:  cfg,
	}

	assert.Nil(t, GetServiceInfo(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := map[string]interface{}{}
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "1.2.3", body["version"])
	assert.Equal(t, "org.archgenome:popdiff", body["id"])
	assert.Equal(t, "mailto:popdiff-maintainers@example.org", body["contactUrl"])
}
