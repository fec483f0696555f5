package staff

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	staff := r.Group("/staff")
	{
		staff.POST("", handler.Create)
		staff.GET("", handler.GetAll)
		staff.GET("/:id", handler.GetById)
	}
}
