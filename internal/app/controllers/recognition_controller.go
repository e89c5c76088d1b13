package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskudos/backend/internal/app/models/dto"
	"github.com/campuskudos/backend/internal/app/services"
	"github.com/campuskudos/backend/internal/middleware"
	"github.com/campuskudos/backend/internal/pkg/apperrors"
	"github.com/campuskudos/backend/internal/pkg/helpers"
)

// RecognitionController handles recognition endpoints
type RecognitionController struct {
	recognitionService *services.RecognitionService
}

// NewRecognitionController creates a new recognition controller
func NewRecognitionController(recognitionService *services.RecognitionService) *RecognitionController {
	return &RecognitionController{recognitionService: recognitionService}
}

// Create godoc
// @Summary Send credits to a peer
// @Description Transfers credits from sender to receiver and records the recognition
// @Tags recognition
// @Accept json
// @Produce json
// @Param request body dto.CreateRecognitionRequest true "Recognition details"
// @Success 201 {object} dto.Response{data=dto.RecognitionResult}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /recognition [post]
func (ctrl *RecognitionController) Create(c *gin.Context) {
	var req dto.CreateRecognitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Invalid request format"))
		return
	}

	result, err := ctrl.recognitionService.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(result, "Recognition sent successfully"))
}

// ListReceived godoc
// @Summary List recognitions received by a student
// @Tags recognition
// @Produce json
// @Param studentId path string true "Student ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.Response{data=dto.RecognitionList}
// @Router /recognition/received/{studentId} [get]
func (ctrl *RecognitionController) ListReceived(c *gin.Context) {
	studentID := c.Param("studentId")
	limit, offset := helpers.ParseLimitOffset(c)

	list, err := ctrl.recognitionService.ListReceived(c.Request.Context(), studentID, limit, offset)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(list, "Recognitions retrieved successfully"))
}

// ListSent godoc
// @Summary List recognitions sent by a student
// @Tags recognition
// @Produce json
// @Param studentId path string true "Student ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.Response{data=dto.RecognitionList}
// @Router /recognition/sent/{studentId} [get]
func (ctrl *RecognitionController) ListSent(c *gin.Context) {
	studentID := c.Param("studentId")
	limit, offset := helpers.ParseLimitOffset(c)

	list, err := ctrl.recognitionService.ListSent(c.Request.Context(), studentID, limit, offset)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(list, "Recognitions retrieved successfully"))
}

// GetByID godoc
// @Summary Get a single recognition
// @Tags recognition
// @Produce json
// @Param id path string true "Recognition ID"
// @Success 200 {object} dto.Response{data=models.Recognition}
// @Failure 404 {object} dto.Response
// @Router /recognition/{id} [get]
func (ctrl *RecognitionController) GetByID(c *gin.Context) {
	rec, err := ctrl.recognitionService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(rec, "Recognition retrieved successfully"))
}
