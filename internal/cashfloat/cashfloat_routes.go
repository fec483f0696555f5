package cashfloat

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	cash := r.Group("/cash-float")
	{
		cash.GET("", handler.GetState)
		cash.PUT("", handler.SetFloat)
		cash.POST("/transactions", handler.ApplyTransaction)
		cash.PUT("/daily-reset", handler.ConfigureDailyReset)
		cash.POST("/daily-reset", handler.PerformDailyReset)
		cash.GET("/audit", handler.GetAuditTrail)
	}
}
