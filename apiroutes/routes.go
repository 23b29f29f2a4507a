package apiroutes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/qpost/go-qpost-server/api"
	restinterceptors "github.com/qpost/go-qpost-server/api/interceptors"
	"github.com/qpost/go-qpost-server/global"
	"github.com/qpost/go-qpost-server/metrics"
	"github.com/qpost/go-qpost-server/repository"
	"github.com/qpost/go-qpost-server/services"
	"github.com/qpost/go-qpost-server/types"
)

// REST API routes
func ConfigRoutes(router *gin.Engine, mailRepo repository.MailRepository) *gin.Engine {
	// unhandled panics anywhere below become a generic 500
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))

	// permissive cross-origin policy; preflight answers 200 with no body
	router.Use(cors.New(cors.Config{
		AllowOrigins:              []string{"*"},
		AllowMethods:              []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Content-Type", "Authorization"},
		OptionsResponseStatusCode: http.StatusOK,
	}))

	// init metrics
	if global.Conf.Prometheus.Enabled {
		metrics.InitMetrics()

		authorized := router.Group("/metrics", gin.BasicAuth(gin.Accounts{
			global.Conf.Prometheus.Username: global.Conf.Prometheus.Password,
		}))

		authorized.GET("", gin.WrapH(promhttp.Handler()))
	}

	directoryUsers := make([]types.User, 0, len(global.Conf.Users))
	for _, u := range global.Conf.Users {
		directoryUsers = append(directoryUsers, types.User{Username: u.Username, Name: u.Name})
	}
	directory := types.NewDirectory(directoryUsers)

	// SERVICE definitions
	mailService := services.NewMailService(directory, mailRepo)
	statsService := services.NewStatsService(mailRepo)

	// API definitions
	usersApi := api.NewUsersApi(directory)
	mailApi := api.NewMailApi(mailService)
	healthApi := api.NewHealthCheckApi(statsService)

	middleware := []gin.HandlerFunc{}
	if global.Conf.Prometheus.Enabled {
		middleware = append(middleware, metrics.MetricsMiddleware())
	}
	if global.Conf.RateLimit.Enabled {
		middleware = append(middleware, restinterceptors.RateLimitMiddleware())
	}

	rootApi := router.Group("/api", middleware...)
	{
		rootApi.GET("/users", usersApi.GetUsers)
		rootApi.POST("/mails", mailApi.SendMail)
		// the third path segment is a username for GET routes and a mail id
		// for PUT and DELETE; the two id spaces must never be conflated
		rootApi.GET("/mails/:username", mailApi.GetMails)
		rootApi.GET("/mails/:username/unread-count", mailApi.GetUnreadCount)
		rootApi.PUT("/mails/:mailId/read", mailApi.MarkAsRead)
		rootApi.DELETE("/mails/:mailId", mailApi.DeleteMail)

		rootApi.GET("/healthcheck", healthApi.HealthCheck)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return router
}
