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

// purchaseHandler handles purchase transaction endpoints.
type purchaseHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newPurchaseHandler(ts portssvc.TransactionSvcFacade) *purchaseHandler {
	return &purchaseHandler{transactionService: ts}
}

func registerPurchaseRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newPurchaseHandler(transactionService)

	rg.POST("/purchases", h.recordPurchase)
	rg.GET("/purchases", h.listPurchases)
	rg.GET("/purchases/:id", h.getPurchase)
	rg.DELETE("/purchases/:id", h.deletePurchase)
}

// recordPurchase godoc
// @Summary Record purchase
// @Description Mints a purchase number, stores the transaction and increments stock for every line, atomically.
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) recordPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid purchase data"})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	txn, result, err := h.transactionService.RecordPurchase(c.Request.Context(), req.PurchaseData, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": clientMessage(err)})
			return
		}
		logger.Error("Failed to record purchase", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record purchase"})
		return
	}

	if len(result.SkippedItemIDs) > 0 {
		logger.Warn("Purchase recorded with unknown items skipped",
			slog.String("purchaseNumber", txn.DocNumber),
			slog.Int("skipped", len(result.SkippedItemIDs)))
	}

	c.JSON(http.StatusOK, dto.PurchaseResponse{
		Message:        "Purchase recorded successfully",
		PurchaseNumber: txn.DocNumber,
		PurchaseData:   dto.ToTransactionDetails(txn),
		ID:             txn.TransactionID,
	})
}

// listPurchases godoc
// @Summary List purchases
// @Description Lists recorded purchases, newest first.
// @Tags purchases
// @Produce json
// @Success 200 {array} dto.TransactionDetails
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), domain.Purchase)
	if err != nil {
		logger.Error("Failed to list purchases", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchases"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionDetailsSlice(txns))
}

// getPurchase godoc
// @Summary Get purchase
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} dto.TransactionDetails
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), domain.Purchase, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
			return
		}
		logger.Error("Failed to fetch purchase", slog.String("transactionID", transactionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchase"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionDetails(txn))
}

// deletePurchase godoc
// @Summary Delete purchase
// @Description Removes the purchase record. Stock levels are not reversed.
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), domain.Purchase, transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
			return
		}
		logger.Error("Failed to delete purchase", slog.String("transactionID", transactionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete purchase"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Purchase deleted successfully"})
}
