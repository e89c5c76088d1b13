package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskudos/backend/internal/app/models/dto"
	"github.com/campuskudos/backend/internal/app/services"
	"github.com/campuskudos/backend/internal/middleware"
	"github.com/campuskudos/backend/internal/pkg/apperrors"
)

// RedemptionController handles redemption endpoints
type RedemptionController struct {
	redemptionService *services.RedemptionService
}

// NewRedemptionController creates a new redemption controller
func NewRedemptionController(redemptionService *services.RedemptionService) *RedemptionController {
	return &RedemptionController{redemptionService: redemptionService}
}

// Redeem godoc
// @Summary Redeem credits for voucher value
// @Description Permanently deducts credits and issues the rupee voucher value
// @Tags redemption
// @Accept json
// @Produce json
// @Param request body dto.RedeemRequest true "Redemption details"
// @Success 200 {object} dto.Response{data=dto.RedemptionReceipt}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /redemption [post]
func (ctrl *RedemptionController) Redeem(c *gin.Context) {
	var req dto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Invalid request format"))
		return
	}

	receipt, err := ctrl.redemptionService.Redeem(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(receipt, "Credits redeemed successfully"))
}

// Info godoc
// @Summary Get a student's redemption info
// @Tags redemption
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.Response{data=dto.RedemptionInfo}
// @Failure 404 {object} dto.Response
// @Router /redemption/info/{studentId} [get]
func (ctrl *RedemptionController) Info(c *gin.Context) {
	info, err := ctrl.redemptionService.Info(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(info, "Redemption info retrieved successfully"))
}

// History godoc
// @Summary Get a student's redemption history
// @Description Redemptions are not recorded in a ledger; only current balances are reported
// @Tags redemption
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.Response{data=dto.RedemptionHistory}
// @Failure 404 {object} dto.Response
// @Router /redemption/history/{studentId} [get]
func (ctrl *RedemptionController) History(c *gin.Context) {
	history, err := ctrl.redemptionService.History(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(history, "Redemption history retrieved successfully"))
}
