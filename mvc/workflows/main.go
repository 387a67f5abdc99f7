package workflows

import (
	"net/http"
	w "popdiff/api/workflows"

	"github.com/labstack/echo"
)

func WorkflowsGet(c echo.Context) error {
	return c.JSON(http.StatusOK, w.WORKFLOW_FST_SCHEMA)
}
