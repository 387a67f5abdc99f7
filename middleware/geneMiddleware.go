package middleware

import (
	"fmt"
	"net/http"
	"popdiff/api/contexts"
	"popdiff/api/models/dtos/errors"
	"regexp"
	"strings"

	"github.com/labstack/echo"
)

var geneNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

/*
Echo middleware to ensure a valid `gene` HTTP query parameter was provided
*/
func MandateGeneAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gene := strings.TrimSpace(c.QueryParam("gene"))
		if len(gene) == 0 {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("missing gene"))
		}

		if !geneNamePattern.MatchString(gene) {
			fmt.Printf("Invalid gene %s\n", gene)
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(fmt.Sprintf("invalid gene %s", gene)))
		}

		gc := c.(*contexts.PopDiffContext)
		gc.Gene = gene

		return next(gc)
	}
}
