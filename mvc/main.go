package mvc

import (
	"popdiff/api/contexts"
	"popdiff/api/models/constants"
	palettes "popdiff/api/models/constants/palette"
	"popdiff/api/services"

	"github.com/labstack/echo"
)

// RetrieveCommonElements gathers what the gene/population routes share;
// gene and populations were validated by middleware. The palette is empty
// unless requested, letting each method pick its own default.
func RetrieveCommonElements(c echo.Context) (*services.AnalysisService, string, []string, constants.Palette) {
	gc := c.(*contexts.PopDiffContext)

	var pal constants.Palette
	if paletteQP := c.QueryParam("palette"); len(paletteQP) > 0 {
		pal = palettes.CastToPalette(paletteQP)
	}

	return gc.AnalysisService, gc.Gene, gc.Populations, pal
}
