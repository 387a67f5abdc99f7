package populations

import (
	"fmt"
	"net/http"
	"time"

	"popdiff/api/contexts"
	e "popdiff/api/models/dtos/errors"

	"github.com/labstack/echo"
)

func GetPopulationsOverview(c echo.Context) error {
	fmt.Printf("[%s] - GetPopulationsOverview hit!\n", time.Now())
	az := c.(*contexts.PopDiffContext).AnalysisService

	overview, err := az.Store.GetOverview(c.Request().Context())
	if err != nil {
		fmt.Printf("Overview failed: %v\n", err)
		return c.JSON(http.StatusInternalServerError, e.CreateSimpleInternalServerError("Something went wrong... Please contact the administrator!"))
	}

	return c.JSON(http.StatusOK, overview)
}
