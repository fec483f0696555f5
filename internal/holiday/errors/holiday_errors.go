package holidayerrors

import (
	"net/http"

	"go-payops/internal/shared/apperror"
)

var (
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be between 1900 and 2100",
		http.StatusBadRequest,
	)

	// ErrFeedUnavailable is internal-only: the holiday service recovers
	// from it with the fallback generator and never returns it to callers.
	ErrFeedUnavailable = apperror.New(
		apperror.CodeExternalSource,
		"holiday feed unreachable or returned a malformed payload",
		http.StatusBadGateway,
	)
)
