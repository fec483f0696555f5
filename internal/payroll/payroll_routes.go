package payroll

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, idempotency gin.HandlerFunc) {
	payrolls := r.Group("/payrolls")
	{
		payrolls.POST("", idempotency, handler.Create)
		payrolls.GET("", handler.GetAll)
		payrolls.GET("/:id", handler.GetById)
		payrolls.GET("/:id/payslip/download", handler.DownloadPayslip)
		payrolls.GET("/staff/:id", handler.GetByStaff)
	}
}
