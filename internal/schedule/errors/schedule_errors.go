package scheduleerrors

import (
	"net/http"

	"go-payops/internal/shared/apperror"
)

var (
	ErrInvalidCadence = apperror.New(
		apperror.CodeInvalidInput,
		"cadence must be one of monthly, semi-monthly, weekly, bi-weekly",
		http.StatusBadRequest,
	)
	ErrInvalidDayCount = apperror.New(
		apperror.CodeInvalidInput,
		"payout/cutoff days must have one entry, or two for semi-monthly",
		http.StatusBadRequest,
	)
	ErrInvalidDayValue = apperror.New(
		apperror.CodeInvalidInput,
		"payout/cutoff days must be within the calendar month (weekday 0-6 for weekly cadences)",
		http.StatusBadRequest,
	)
	ErrInvalidScheduleID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid schedule id",
		http.StatusBadRequest,
	)
	ErrInvalidOvertimeMultiplier = apperror.New(
		apperror.CodeInvalidInput,
		"overtime multiplier must be at least 1",
		http.StatusBadRequest,
	)
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll schedule not found",
		http.StatusNotFound,
	)
	ErrScheduleInUse = apperror.New(
		apperror.CodeConflict,
		"schedule cannot be deleted while staff are assigned to it",
		http.StatusConflict,
	)
)
