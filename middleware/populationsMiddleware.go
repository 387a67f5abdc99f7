package middleware

import (
	"fmt"
	"net/http"
	"popdiff/api/contexts"
	"popdiff/api/models/dtos/errors"
	"popdiff/api/utils"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a comma-separated `populations` HTTP query parameter
(spelled out plural, e.g. `JPN,UK,YRI`) was provided
*/
func MandatePopulationsAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		populations := utils.SplitCommaSeparated(c.QueryParam("populations"))
		if len(populations) == 0 {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("missing populations"))
		}

		for _, p := range populations {
			if !utils.IsValidPopulationCode(p) {
				fmt.Printf("Invalid population code %s\n", p)
				return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(fmt.Sprintf("invalid population code %s", p)))
			}
		}

		gc := c.(*contexts.PopDiffContext)
		gc.Populations = append(gc.Populations, populations...)

		return next(gc)
	}
}

/*
Echo middleware requiring at least two populations, the minimum for a pairwise comparison
*/
func MandatePopulationPair(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.PopDiffContext)
		if len(gc.Populations) < 2 {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("at least two populations are required"))
		}
		return next(gc)
	}
}
