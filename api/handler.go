package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/neofinance/expense-tracker/internal/transaction"
)

// transactionHandler holds the transaction service and implements HTTP
// handlers for the transaction endpoints.
type transactionHandler struct {
	service *transaction.Service
	logger  *zap.Logger
	timeout time.Duration
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(service *transaction.Service, logger *zap.Logger, timeout time.Duration) *transactionHandler {
	return &transactionHandler{
		service: service,
		logger:  logger,
		timeout: timeout,
	}
}

// storageCtx bounds a storage round-trip so a dead backend fails the request
// instead of blocking it.
func (h *transactionHandler) storageCtx(ctx *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request.Context(), h.timeout)
}

// handleList handles the GET /transactions endpoint.
func (h *transactionHandler) handleList(ctx *gin.Context) {
	reqCtx, cancel := h.storageCtx(ctx)
	defer cancel()

	records, err := h.service.List(reqCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// handleCreate handles the POST /transactions endpoint.
func (h *transactionHandler) handleCreate(ctx *gin.Context) {
	var req transaction.CreateInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	reqCtx, cancel := h.storageCtx(ctx)
	defer cancel()

	record, err := h.service.Create(reqCtx, req)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// handleDelete handles the DELETE /transactions/:id endpoint.
func (h *transactionHandler) handleDelete(ctx *gin.Context) {
	reqCtx, cancel := h.storageCtx(ctx)
	defer cancel()

	if err := h.service.Delete(reqCtx, ctx.Param("id")); err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// respondError maps service errors onto status codes. The cause text always
// travels in the body so operators can diagnose storage failures.
func (h *transactionHandler) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, transaction.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, transaction.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("transaction operation failed",
			zap.String("request_id", ctx.GetString("request_id")),
			zap.Error(err),
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
