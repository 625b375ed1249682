package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/report-hub/internal/config"
	"github.com/linskybing/report-hub/pkg/response"
	"github.com/linskybing/report-hub/pkg/utils"
)

// Admin lets only ADMIN callers through. It must run after
// JWTAuthMiddleware.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		if !claims.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
			return
		}
		c.Next()
	}
}

// LoggingMiddleware logs one line per request.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		caller := "-"
		if uid, err := utils.GetUserIDFromContext(c); err == nil {
			caller = uid
		}
		log.Printf("[http] %s %s %d %s caller=%s", c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start).Round(time.Microsecond), caller)
	}
}

// CORSMiddleware allows the configured origins. Websocket upgrades bypass it.
func CORSMiddleware() gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(config.CorsOrigins))
	for _, o := range config.CorsOrigins {
		allowed[strings.TrimRight(o, "/")] = struct{}{}
	}

	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if _, ok := allowed["*"]; ok {
				return true
			}
			_, ok := allowed[origin]
			return ok
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	corsHandler := cors.New(corsConfig)
	return func(c *gin.Context) {
		upgrade := c.GetHeader("Upgrade")
		if strings.EqualFold(upgrade, "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
