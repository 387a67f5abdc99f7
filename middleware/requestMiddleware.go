package middleware

import (
	"popdiff/api/contexts"
	"popdiff/api/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo"
)

/*
Echo middleware tagging each analysis request with an id, echoed back in the
response body and the X-Request-Id header
*/
func AssignRequestId(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.PopDiffContext)

		requestId := uuid.New()
		if fromHeader := c.Request().Header.Get("X-Request-Id"); len(fromHeader) > 0 {
			if utils.IsValidUUID(fromHeader) {
				requestId = uuid.MustParse(fromHeader)
			}
		}

		gc.RequestId = requestId
		c.Response().Header().Set("X-Request-Id", requestId.String())

		return next(gc)
	}
}
