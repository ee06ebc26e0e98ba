package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stocklane/inventory_backend/internal/apperrors"
	"github.com/stocklane/inventory_backend/internal/core/domain"
	portssvc "github.com/stocklane/inventory_backend/internal/core/ports/services"
	"github.com/stocklane/inventory_backend/internal/dto"
	"github.com/stocklane/inventory_backend/internal/middleware"
)

// salesHandler handles sale transaction endpoints.
type salesHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newSalesHandler(ts portssvc.TransactionSvcFacade) *salesHandler {
	return &salesHandler{transactionService: ts}
}

// RegisterSalesRoutes wires the sale endpoints onto the group.
func RegisterSalesRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newSalesHandler(transactionService)

	rg.POST("/sales", h.recordSale)
	rg.GET("/sales", h.listSales)
	rg.GET("/sales/:id", h.getSale)
	rg.DELETE("/sales/:id", h.deleteSale)
}

// recordSale godoc
// @Summary Record sale
// @Description Mints a sales number, verifies stock sufficiency for every line, then stores the sale and decrements stock atomically.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSalesRequest true "Sale details"
// @Success 200 {object} dto.SalesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales [post]
func (h *salesHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sales data"})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	txn, result, err := h.transactionService.RecordSale(c.Request.Context(), req.SalesData, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientStock) || errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": clientMessage(err)})
			return
		}
		logger.Error("Failed to record sale", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		return
	}

	if len(result.SkippedItemIDs) > 0 {
		logger.Warn("Sale recorded with unknown items skipped",
			slog.String("salesNumber", txn.DocNumber),
			slog.Int("skipped", len(result.SkippedItemIDs)))
	}

	c.JSON(http.StatusOK, dto.SalesResponse{
		Message:     "Sale recorded successfully",
		SalesNumber: txn.DocNumber,
		SalesData:   dto.ToTransactionDetails(txn),
		ID:          txn.TransactionID,
	})
}

// listSales godoc
// @Summary List sales
// @Description Lists recorded sales, newest first.
// @Tags sales
// @Produce json
// @Success 200 {array} dto.TransactionDetails
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *salesHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), domain.Sale)
	if err != nil {
		logger.Error("Failed to list sales", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionDetailsSlice(txns))
}

// getSale godoc
// @Summary Get sale
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.TransactionDetails
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *salesHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), domain.Sale, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		logger.Error("Failed to fetch sale", slog.String("transactionID", transactionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sale"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionDetails(txn))
}

// deleteSale godoc
// @Summary Delete sale
// @Description Removes the sale record. Stock levels are not reversed.
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [delete]
func (h *salesHandler) deleteSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), domain.Sale, transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		logger.Error("Failed to delete sale", slog.String("transactionID", transactionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sale"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Sale deleted successfully"})
}
