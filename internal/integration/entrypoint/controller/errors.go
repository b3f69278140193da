// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// handleError writes the response for a use case failure, mapping coded
// domain errors to their HTTP status.
func handleError(ctx *gin.Context, err error) {
	var (
		txnErr    *domainerror.TransactionError
		budgetErr *domainerror.BudgetError
		importErr *domainerror.ImportError
		dashErr   *domainerror.DashboardError
		ledgerErr *domainerror.LedgerError
	)

	switch {
	case errors.As(err, &txnErr):
		ctx.JSON(statusForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
	case errors.As(err, &budgetErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
	case errors.As(err, &importErr):
		ctx.JSON(statusForImportError(importErr.Code), dto.ErrorResponse{
			Error:   importErr.Message,
			Code:    string(importErr.Code),
			Details: causeOf(importErr.Err),
		})
	case errors.As(err, &dashErr):
		ctx.JSON(statusForDashboardError(dashErr.Code), dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
	case errors.As(err, &ledgerErr):
		slog.Error("Ledger store failure", "code", ledgerErr.Code, "error", err)
		ctx.JSON(statusForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
	default:
		slog.Error("Unhandled request error", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func statusForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func statusForImportError(code domainerror.ImportErrorCode) int {
	switch code {
	case domainerror.ErrCodeStatementTooLarge:
		return http.StatusRequestEntityTooLarge
	case domainerror.ErrCodeUnsupportedFormat:
		return http.StatusUnsupportedMediaType
	case domainerror.ErrCodeUnreadableStatement,
		domainerror.ErrCodeMissingStatementColumn:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func statusForDashboardError(code domainerror.DashboardErrorCode) int {
	if code == domainerror.ErrCodeDashboardInternalError {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

func statusForLedgerError(code domainerror.LedgerErrorCode) int {
	if code == domainerror.ErrCodeNoSnapshot {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}

func causeOf(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
