package payroll

import (
	"go-payroll-my/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	runs := r.Group("/payroll")
	{
		runs.GET("/runs", handler.GetRuns)
		runs.GET("/runs/:id", handler.GetRun)
		runs.GET("/ytd/:employeeID", handler.GetYTD)
		if redisClient != nil {
			runs.POST("/runs", middleware.Idempotency(redisClient), handler.Run)
		} else {
			runs.POST("/runs", handler.Run)
		}
		runs.POST("/runs/batch", handler.RunBatch)
	}

	statutory := r.Group("/statutory")
	{
		statutory.GET("/epf/parts/:employeeID", handler.GetEPFPart)
	}
}
