package timelogerrors

import (
	"net/http"

	"go-payops/internal/shared/apperror"
)

var (
	ErrInvalidClockTimes = apperror.New(
		apperror.CodeInvalidInput,
		"clock_out must be after clock_in",
		http.StatusBadRequest,
	)
	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"invalid timestamp format, expected RFC3339",
		http.StatusBadRequest,
	)
	ErrNegativeHours = apperror.New(
		apperror.CodeInvalidInput,
		"total_hours cannot be negative",
		http.StatusBadRequest,
	)
)
