package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/app/models/dto"
	"github.com/osunpoly/polyreg/internal/config"
	"github.com/osunpoly/polyreg/internal/pkg/auth"
	"github.com/osunpoly/polyreg/internal/pkg/logger"
)

// AdminKeyMiddleware gates the admin console endpoints. A request passes
// with either the shared x-admin-key header or a bearer token carrying the
// ADMIN role. Gateway errors use the console's {success, error} shape.
type AdminKeyMiddleware struct {
	cfg        *config.Config
	jwtService *auth.JWTService
}

// NewAdminKeyMiddleware creates a new AdminKeyMiddleware
func NewAdminKeyMiddleware(cfg *config.Config, jwtService *auth.JWTService) *AdminKeyMiddleware {
	return &AdminKeyMiddleware{
		cfg:        cfg,
		jwtService: jwtService,
	}
}

// RequireAdmin validates the admin credential on the request
func (m *AdminKeyMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.cfg.AdminConfigured() {
			logger.Error().Msg("Admin credentials are not configured")
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewAdminError("Server not configured"))
			return
		}

		if key := c.GetHeader("x-admin-key"); key != "" {
			if subtle.ConstantTimeCompare([]byte(key), []byte(m.cfg.Admin.Password)) == 1 {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewAdminError("Unauthorized"))
			return
		}

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString, err := auth.ExtractBearerToken(authHeader)
			if err == nil {
				claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
				if err == nil && claims.RoleType == string(models.RoleAdmin) {
					c.Next()
					return
				}
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewAdminError("Unauthorized"))
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewAdminError("Unauthorized"))
	}
}
