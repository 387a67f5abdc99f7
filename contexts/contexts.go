package contexts

import (
	"popdiff/api/models"
	"popdiff/api/services"

	"github.com/google/uuid"
	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the analysis service and other variables
	PopDiffContext struct {
		echo.Context
		Config          *models.Config
		AnalysisService *services.AnalysisService

		RequestId   uuid.UUID
		Gene        string
		Populations []string
	}
)
