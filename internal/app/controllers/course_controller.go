package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/osunpoly/polyreg/internal/app/models/dto"
	"github.com/osunpoly/polyreg/internal/app/services"
	"github.com/osunpoly/polyreg/internal/middleware"
)

// CourseController handles the student-facing course catalog
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetCatalog lists catalog courses
// @Summary Browse the course catalog
// @Description Lists catalog courses. With department, level and semester set it returns the courses a student at that position can take; a course without a session matches any session.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param department query string false "Department name"
// @Param level query string false "Academic level (ND1, ND2, HND1, HND2)"
// @Param semester query string false "Semester (First or Second)"
// @Param session query string false "Academic session, e.g. 2024/2025"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter combination"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetCatalog(ctx *gin.Context) {
	var query dto.CatalogQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid catalog query").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	courses, err := c.courseService.Catalog(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      courses,
		Timestamp: time.Now(),
	})
}
