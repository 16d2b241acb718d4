package controllers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/osunpoly/polyreg/internal/app/models/dto"
	"github.com/osunpoly/polyreg/internal/app/services"
	"github.com/osunpoly/polyreg/internal/config"
	"github.com/osunpoly/polyreg/internal/middleware"
	"github.com/osunpoly/polyreg/internal/pkg/apperrors"
	"github.com/osunpoly/polyreg/internal/pkg/auth"
	"github.com/osunpoly/polyreg/internal/pkg/helpers"
	"github.com/osunpoly/polyreg/internal/pkg/logger"
)

// AdminController implements the admin console gateway. The write endpoints
// accept an {action, payload} envelope and answer with the console's
// {success, data|error} shape.
type AdminController struct {
	cfg            *config.Config
	jwtService     *auth.JWTService
	courseService  *services.CourseService
	studentService *services.StudentService
	reportService  *services.ReportService
}

// NewAdminController creates a new AdminController
func NewAdminController(cfg *config.Config, jwtService *auth.JWTService, courseService *services.CourseService, studentService *services.StudentService, reportService *services.ReportService) *AdminController {
	return &AdminController{
		cfg:            cfg,
		jwtService:     jwtService,
		courseService:  courseService,
		studentService: studentService,
		reportService:  reportService,
	}
}

// handleAdminError maps a service error onto the gateway response shape
func handleAdminError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, apperrors.ErrCourseCodeExists),
		errors.Is(err, apperrors.ErrConflict):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrMatricNumberExists),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidUnitCount),
		errors.Is(err, apperrors.ErrBadRequest):
		// The console treats a duplicate matric as a form error, not a conflict
		status, message = http.StatusBadRequest, err.Error()
	default:
		logger.Error().Err(err).Msg("Admin gateway error")
	}

	ctx.JSON(status, dto.NewAdminError(message))
}

func decodePayload(ctx *gin.Context, payload json.RawMessage, out interface{}) bool {
	if len(payload) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewAdminError("Missing payload"))
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewAdminError("Invalid payload: "+err.Error()))
		return false
	}
	if detail := middleware.ValidateStruct(out); detail != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewAdminError("Invalid payload: "+detail.Message))
		return false
	}
	return true
}

// Auth checks operator credentials and issues an admin token
// @Summary Authenticate the admin console
// @Description Checks operator credentials against the configured admin account and returns a short-lived admin token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AdminAuthRequest true "Operator credentials"
// @Success 200 {object} dto.AdminAuthResponse "Authenticated"
// @Failure 400 {object} dto.AdminResponse "Invalid request data"
// @Failure 401 {object} dto.AdminResponse "Invalid credentials"
// @Failure 500 {object} dto.AdminResponse "Server not configured"
// @Router /admin/auth [post]
func (c *AdminController) Auth(ctx *gin.Context) {
	if !c.cfg.AdminConfigured() {
		ctx.JSON(http.StatusInternalServerError, dto.NewAdminError("Server not configured"))
		return
	}

	var req dto.AdminAuthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewAdminError("Invalid request: "+err.Error()))
		return
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(c.cfg.Admin.Username)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(c.cfg.Admin.Password)) == 1
	if !usernameOK || !passwordOK {
		ctx.JSON(http.StatusUnauthorized, dto.NewAdminError("Invalid credentials"))
		return
	}

	token, expiresIn, err := c.jwtService.GenerateAdminToken(req.Username)
	if err != nil {
		handleAdminError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminAuthResponse{
		Success:   true,
		Token:     token,
		ExpiresIn: int64(expiresIn),
	})
}

// Courses dispatches catalog management actions
// @Summary Manage the course catalog
// @Description Dispatches on the action field: insert, update or delete a catalog course
// @Tags admin
// @Accept json
// @Produce json
// @Param x-admin-key header string false "Shared admin key"
// @Param request body dto.AdminRequest true "Action envelope"
// @Success 200 {object} dto.AdminResponse "Action applied"
// @Failure 400 {object} dto.AdminResponse "Unknown action or invalid payload"
// @Failure 401 {object} dto.AdminResponse "Unauthorized"
// @Failure 409 {object} dto.AdminResponse "Course code already exists"
// @Failure 500 {object} dto.AdminResponse "Internal server error"
// @Router /admin/courses [post]
func (c *AdminController) Courses(ctx *gin.Context) {
	var req dto.AdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewAdminError("Invalid request: "+err.Error()))
		return
	}

	switch req.Action {
	case "insert":
		var payload dto.CreateCourseRequest
		if !decodePayload(ctx, req.Payload, &payload) {
			return
		}
		course, err := c.courseService.CreateCourse(ctx, payload)
		if err != nil {
			handleAdminError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAdminSuccess(course))

	case "update":
		var payload dto.UpdateCourseRequest
		if !decodePayload(ctx, req.Payload, &payload) {
			return
		}
		course, err := c.courseService.UpdateCourse(ctx, payload)
		if err != nil {
			handleAdminError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAdminSuccess(course))

	case "delete":
		var payload dto.DeleteCourseRequest
		if !decodePayload(ctx, req.Payload, &payload) {
			return
		}
		if err := c.courseService.DeleteCourse(ctx, payload.ID); err != nil {
			handleAdminError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAdminSuccess(gin.H{"deleted": payload.ID}))

	default:
		ctx.JSON(http.StatusBadRequest, dto.NewAdminError("Unknown action"))
	}
}

// Students dispatches student management actions
// @Summary Manage students
// @Description Dispatches on the action field: list students, toggle a fees flag or provision a student account
// @Tags admin
// @Accept json
// @Produce json
// @Param x-admin-key header string false "Shared admin key"
// @Param request body dto.AdminRequest true "Action envelope"
// @Success 200 {object} dto.AdminResponse "Action applied"
// @Failure 400 {object} dto.AdminResponse "Unknown action or invalid payload"
// @Failure 401 {object} dto.AdminResponse "Unauthorized"
// @Failure 409 {object} dto.AdminResponse "Matric number already exists"
// @Failure 500 {object} dto.AdminResponse "Internal server error"
// @Router /admin/students [post]
func (c *AdminController) Students(ctx *gin.Context) {
	var req dto.AdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewAdminError("Invalid request: "+err.Error()))
		return
	}

	switch req.Action {
	case "list":
		page, size := helpers.ParsePaginationParams(ctx)
		if len(req.Payload) > 0 {
			var payload dto.ListStudentsRequest
			if !decodePayload(ctx, req.Payload, &payload) {
				return
			}
			if payload.Page > 0 {
				page = payload.Page
			}
			if payload.Size > 0 {
				size = payload.Size
			}
		}
		students, err := c.studentService.ListStudents(ctx, page, size)
		if err != nil {
			handleAdminError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAdminSuccess(students))

	case "toggleFees":
		var payload dto.ToggleFeesRequest
		if !decodePayload(ctx, req.Payload, &payload) {
			return
		}
		student, err := c.studentService.ToggleFees(ctx, payload)
		if err != nil {
			handleAdminError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAdminSuccess(student))

	case "createStudent":
		var payload dto.CreateStudentRequest
		if !decodePayload(ctx, req.Payload, &payload) {
			return
		}
		student, err := c.studentService.CreateStudent(ctx, payload)
		if err != nil {
			handleAdminError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAdminSuccess(student))

	default:
		ctx.JSON(http.StatusBadRequest, dto.NewAdminError("Unknown action"))
	}
}

// Dashboard returns the admin dashboard aggregates
// @Summary Get dashboard aggregates
// @Description Returns student, course and registration counters plus the department distribution
// @Tags admin
// @Produce json
// @Param x-admin-key header string false "Shared admin key"
// @Success 200 {object} dto.AdminResponse "Dashboard data"
// @Failure 401 {object} dto.AdminResponse "Unauthorized"
// @Failure 500 {object} dto.AdminResponse "Internal server error"
// @Router /admin/dashboard [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	dashboard, err := c.reportService.Dashboard(ctx)
	if err != nil {
		handleAdminError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAdminSuccess(dashboard))
}

// Reports returns the full aggregate report
// @Summary Get the overview report
// @Description Returns breakdowns of students, courses and registrations
// @Tags admin
// @Produce json
// @Param x-admin-key header string false "Shared admin key"
// @Success 200 {object} dto.AdminResponse "Overview report"
// @Failure 401 {object} dto.AdminResponse "Unauthorized"
// @Failure 500 {object} dto.AdminResponse "Internal server error"
// @Router /admin/reports [get]
func (c *AdminController) Reports(ctx *gin.Context) {
	overview, err := c.reportService.Overview(ctx)
	if err != nil {
		handleAdminError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAdminSuccess(overview))
}

// Export downloads a report as CSV or xlsx
// @Summary Export a report
// @Description Exports the overview report as CSV, or the registration details as CSV or xlsx
// @Tags admin
// @Produce octet-stream
// @Param x-admin-key header string false "Shared admin key"
// @Param type query string true "Report type (overview or registrations)"
// @Param format query string false "Export format (csv or xlsx, default csv)"
// @Success 200 {file} file "Report file"
// @Failure 400 {object} dto.AdminResponse "Invalid export parameters"
// @Failure 401 {object} dto.AdminResponse "Unauthorized"
// @Failure 500 {object} dto.AdminResponse "Internal server error"
// @Router /admin/reports/export [get]
func (c *AdminController) Export(ctx *gin.Context) {
	var query dto.ExportQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewAdminError("Invalid export parameters: "+err.Error()))
		return
	}
	if query.Format == "" {
		query.Format = "csv"
	}

	date := time.Now().Format("2006-01-02")

	switch {
	case query.Type == "overview" && query.Format == "csv":
		out, err := c.reportService.ExportOverviewCSV(ctx)
		if err != nil {
			handleAdminError(ctx, err)
			return
		}
		ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "overview-report-"+date+".csv"))
		ctx.Data(http.StatusOK, "text/csv", out)

	case query.Type == "registrations" && query.Format == "csv":
		out, err := c.reportService.ExportRegistrationsCSV(ctx)
		if err != nil {
			handleAdminError(ctx, err)
			return
		}
		ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "registration-details-"+date+".csv"))
		ctx.Data(http.StatusOK, "text/csv", out)

	case query.Type == "registrations" && query.Format == "xlsx":
		buf, err := c.reportService.ExportRegistrationsWorkbook(ctx)
		if err != nil {
			handleAdminError(ctx, err)
			return
		}
		ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "registration-details-"+date+".xlsx"))
		ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())

	default:
		ctx.JSON(http.StatusBadRequest, dto.NewAdminError("Unsupported type/format combination"))
	}
}
