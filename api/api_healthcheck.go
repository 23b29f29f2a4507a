package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qpost/go-qpost-server/global"
	"github.com/qpost/go-qpost-server/services"
)

type HealthCheckApi struct {
	statsService *services.StatsService
}

func NewHealthCheckApi(statsService *services.StatsService) *HealthCheckApi {
	return &HealthCheckApi{statsService: statsService}
}

func (ha *HealthCheckApi) HealthCheck(c *gin.Context) {
	version := global.Conf.Version
	mode := global.Conf.Mode
	stats, err := ha.statsService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "degraded", "version": version, "mode": mode})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version, "mode": mode, "mails": stats})
}
