package controllers

import (
	"github.com/gin-gonic/gin"

	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type InterestController struct {
	interestService services.InterestServiceInterface
}

func NewInterestController(interestService services.InterestServiceInterface) *InterestController {
	return &InterestController{
		interestService: interestService,
	}
}

func (ic *InterestController) ListInterests(c *gin.Context) {
	interests, err := ic.interestService.GetAllInterests(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, interests, "Fetched interests successfully")
}
