package cashfloaterrors

import (
	"net/http"

	"go-payops/internal/shared/apperror"
)

var (
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidResetAmount = apperror.New(
		apperror.CodeInvalidInput,
		"daily reset amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrResetDisabled = apperror.New(
		apperror.CodeInvalidState,
		"daily reset is not enabled",
		http.StatusBadRequest,
	)
	ErrInsufficientFunds = apperror.New(
		apperror.CodeInsufficientFunds,
		"change due exceeds the current cash float",
		http.StatusUnprocessableEntity,
	)
)
