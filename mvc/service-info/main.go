package serviceInfo

import (
	"popdiff/api/contexts"
	serviceInfo "popdiff/api/models/constants/service-info"

	"net/http"

	"github.com/labstack/echo"
)

// GA4GH service-info: https://github.com/ga4gh-discovery/ga4gh-service-info
func GetServiceInfo(c echo.Context) error {
	cfg := c.(*contexts.PopDiffContext).Config

	contactUrl := cfg.ServiceContact
	if len(contactUrl) == 0 {
		contactUrl = string(serviceInfo.SERVICE_CONTACT)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"type": map[string]interface{}{
			"artifact": serviceInfo.SERVICE_ARTIFACT,
			"group":    serviceInfo.SERVICE_TYPE_NO_VER,
			"version":  cfg.SemVer,
		},
		"id":          serviceInfo.SERVICE_ID,
		"name":        serviceInfo.SERVICE_NAME,
		"description": serviceInfo.SERVICE_DESCRIPTION,
		"contactUrl":  contactUrl,
		"version":     cfg.SemVer,
	})
}
