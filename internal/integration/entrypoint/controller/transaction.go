// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/statement"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase     *transaction.ListTransactionsUseCase
	createUseCase   *transaction.CreateTransactionUseCase
	deleteUseCase   *transaction.DeleteTransactionUseCase
	importUseCase   *statement.ImportStatementUseCase
	defaultPageSize int
	maxUploadBytes  int64
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	importUseCase *statement.ImportStatementUseCase,
	defaultPageSize int,
	maxUploadBytes int64,
) *TransactionController {
	return &TransactionController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		deleteUseCase:   deleteUseCase,
		importUseCase:   importUseCase,
		defaultPageSize: defaultPageSize,
		maxUploadBytes:  maxUploadBytes,
	}
}

// List handles GET /transactions requests.
// Without a month parameter the whole history is listed.
func (c *TransactionController) List(ctx *gin.Context) {
	view, err := parseView(ctx, entity.AllTime, c.defaultPageSize)
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{View: view})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingTransactionFields),
			Details: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		Description: req.Description,
		Amount:      req.Amount,
		Kind:        entity.TransactionKind(req.Kind),
		Category:    req.Category,
		OccurredOn:  req.OccurredOn,
		Settled:     req.Settled,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	subject, _ := middleware.GetSubjectFromContext(ctx)
	slog.Info("Transaction created",
		"transaction_id", output.Transaction.ID,
		"kind", output.Transaction.Kind,
		"subject", subject,
		"alert_sent", output.AlertSent,
	)

	ctx.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Transaction: dto.ToTransactionResponse(*output.Transaction),
		AlertSent:   output.AlertSent,
	})
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
			Code:  string(domainerror.ErrCodeInvalidTransactionID),
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Import handles POST /transactions/import requests with a multipart "file" field.
func (c *TransactionController) Import(ctx *gin.Context) {
	if c.maxUploadBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxUploadBytes)
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(ctx, domainerror.NewImportError(
				domainerror.ErrCodeStatementTooLarge,
				"statement file too large",
				domainerror.ErrStatementTooLarge,
			))
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "A statement file is required in the 'file' field",
			Code:    string(domainerror.ErrCodeEmptyStatement),
			Details: err.Error(),
		})
		return
	}

	file, err := header.Open()
	if err != nil {
		handleError(ctx, domainerror.NewImportError(domainerror.ErrCodeUnreadableStatement, "statement file could not be read", err))
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		handleError(ctx, domainerror.NewImportError(domainerror.ErrCodeUnreadableStatement, "statement file could not be read", err))
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), statement.ImportStatementInput{
		FileName: header.Filename,
		Payload:  payload,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImportStatementResponse(output))
}
