package holiday

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	holidayerrors "go-payops/internal/holiday/errors"
	"go-payops/internal/shared/apperror"
	"go-payops/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetByYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1900 || year > 2100 {
		httpErr := apperror.ToHTTP(holidayerrors.ErrInvalidYear)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	holidays := h.service.Resolve(c.Request.Context(), year)
	response.Success(c, http.StatusOK, mapToListResponse(holidays), nil)
}
