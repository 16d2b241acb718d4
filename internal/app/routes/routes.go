package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/osunpoly/polyreg/internal/app/controllers"
	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/app/models/dto"
	"github.com/osunpoly/polyreg/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	courseController *controllers.CourseController,
	registrationController *controllers.RegistrationController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
	adminKeyMiddleware *middleware.AdminKeyMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated student routes ---
	// Admin tokens are valid JWTs but carry the ADMIN role; the student
	// surface stays student-only.
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	authenticated.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
	{
		profile := authenticated.Group("/profile")
		{
			profile.GET("", profileController.GetProfile)
			profile.PUT("", profileController.UpdateProfile)
		}

		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetCatalog)
		}

		registrations := authenticated.Group("/registrations")
		{
			registrations.POST("", registrationController.Submit)
			registrations.GET("", registrationController.History)
			registrations.GET("/slip", registrationController.Slip)
		}
	}

	// --- Staff console routes ---
	// Login is open; everything else needs the x-admin-key header or an
	// admin bearer token.
	admin := v1.Group("/admin")
	{
		admin.POST("/auth", adminController.Auth)

		adminProtected := admin.Group("")
		adminProtected.Use(adminKeyMiddleware.RequireAdmin())
		{
			adminProtected.POST("/courses", adminController.Courses)
			adminProtected.POST("/students", adminController.Students)
			adminProtected.GET("/dashboard", adminController.Dashboard)
			adminProtected.GET("/reports", adminController.Reports)
			adminProtected.GET("/reports/export", adminController.Export)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
