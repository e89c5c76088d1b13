package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskudos/backend/internal/app/models/dto"
	"github.com/campuskudos/backend/internal/app/services"
	"github.com/campuskudos/backend/internal/middleware"
	"github.com/campuskudos/backend/internal/pkg/apperrors"
)

// EndorsementController handles endorsement endpoints
type EndorsementController struct {
	endorsementService *services.EndorsementService
}

// NewEndorsementController creates a new endorsement controller
func NewEndorsementController(endorsementService *services.EndorsementService) *EndorsementController {
	return &EndorsementController{endorsementService: endorsementService}
}

// Create godoc
// @Summary Endorse a recognition
// @Description Records an endorsement; one per student per recognition
// @Tags endorsement
// @Accept json
// @Produce json
// @Param request body dto.CreateEndorsementRequest true "Endorsement details"
// @Success 201 {object} dto.Response{data=models.Endorsement}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /endorsement [post]
func (ctrl *EndorsementController) Create(c *gin.Context) {
	var req dto.CreateEndorsementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Invalid request format"))
		return
	}

	endorsement, err := ctrl.endorsementService.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(endorsement, "Endorsement added successfully"))
}

// Delete godoc
// @Summary Remove an endorsement
// @Tags endorsement
// @Produce json
// @Param id path string true "Endorsement ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /endorsement/{id} [delete]
func (ctrl *EndorsementController) Delete(c *gin.Context) {
	if err := ctrl.endorsementService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Endorsement removed successfully"))
}

// ListByRecognition godoc
// @Summary List endorsements on a recognition
// @Tags endorsement
// @Produce json
// @Param recognitionId path string true "Recognition ID"
// @Success 200 {object} dto.Response{data=dto.EndorsementList}
// @Router /endorsement/recognition/{recognitionId} [get]
func (ctrl *EndorsementController) ListByRecognition(c *gin.Context) {
	list, err := ctrl.endorsementService.ListByRecognition(c.Request.Context(), c.Param("recognitionId"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(list, "Endorsements retrieved successfully"))
}

// Check godoc
// @Summary Check whether a student endorsed a recognition
// @Tags endorsement
// @Produce json
// @Param recognitionId path string true "Recognition ID"
// @Param endorserId path string true "Endorser student ID"
// @Success 200 {object} dto.Response{data=dto.EndorsementCheck}
// @Router /endorsement/check/{recognitionId}/{endorserId} [get]
func (ctrl *EndorsementController) Check(c *gin.Context) {
	check, err := ctrl.endorsementService.Check(c.Request.Context(), c.Param("recognitionId"), c.Param("endorserId"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(check, "Endorsement status retrieved successfully"))
}
