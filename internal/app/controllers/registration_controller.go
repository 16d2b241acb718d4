package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/osunpoly/polyreg/internal/app/models/dto"
	"github.com/osunpoly/polyreg/internal/app/services"
	"github.com/osunpoly/polyreg/internal/middleware"
)

// RegistrationController handles course registration endpoints
type RegistrationController struct {
	registrationService *services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService *services.RegistrationService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
	}
}

// Submit registers a set of courses for one session/semester
// @Summary Submit a course registration
// @Description Registers the selected courses for one session and semester. The submission must satisfy the unit bounds and the student's fees must be paid.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitRegistrationRequest true "Courses to register"
// @Success 201 {object} dto.APIResponse{data=dto.RegistrationGroupResponse} "Registration recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or units outside the allowed range"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "School fees not paid"
// @Failure 409 {object} dto.ErrorResponse "Course already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations [post]
func (c *RegistrationController) Submit(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.SubmitRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	group, err := c.registrationService.Submit(ctx, userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      group,
		Timestamp: time.Now(),
	})
}

// History lists the student's registrations grouped per term
// @Summary Get registration history
// @Description Returns the authenticated student's registrations grouped by session and semester
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RegistrationGroupResponse} "Registrations retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations [get]
func (c *RegistrationController) History(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	groups, err := c.registrationService.History(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      groups,
		Timestamp: time.Now(),
	})
}

// Slip downloads the printable registration slip for one term
// @Summary Download the registration slip
// @Description Renders the plain-text registration slip for one session and semester
// @Tags registrations
// @Produce plain
// @Security BearerAuth
// @Param session query string true "Academic session, e.g. 2024/2025"
// @Param semester query string true "Semester (First or Second)"
// @Success 200 {string} string "Registration slip"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "No registration for that term"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/slip [get]
func (c *RegistrationController) Slip(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	session := ctx.Query("session")
	semester := ctx.Query("semester")
	if session == "" || semester == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "session and semester are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	slip, err := c.registrationService.Slip(ctx, userID, session, semester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", slip.Filename))
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(slip.Content))
}
