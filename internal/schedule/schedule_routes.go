package schedule

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	schedules := r.Group("/schedules")
	{
		schedules.POST("", handler.Create)
		schedules.GET("", handler.GetAll)
		schedules.GET("/:id", handler.GetById)
		schedules.GET("/:id/next-payout", handler.UpcomingPayout)
		schedules.PUT("/:id", handler.Update)
		schedules.DELETE("/:id", handler.Delete)
	}
}
