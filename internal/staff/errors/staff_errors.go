package stafferrors

import (
	"net/http"

	"go-payops/internal/shared/apperror"
)

var (
	ErrInvalidStaffID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid staff id",
		http.StatusBadRequest,
	)
	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound,
		"staff member not found",
		http.StatusNotFound,
	)
	ErrNegativeRate = apperror.New(
		apperror.CodeInvalidInput,
		"daily rate and salary components cannot be negative",
		http.StatusBadRequest,
	)
)
