package timelog

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	logs := r.Group("/time-logs")
	{
		logs.POST("", handler.Create)
		logs.GET("/staff/:id", handler.GetByStaff)
	}
}
