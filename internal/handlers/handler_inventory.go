package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stocklane/inventory_backend/internal/apperrors"
	portssvc "github.com/stocklane/inventory_backend/internal/core/ports/services"
	"github.com/stocklane/inventory_backend/internal/dto"
	"github.com/stocklane/inventory_backend/internal/middleware"
)

// inventoryHandler handles stock item endpoints.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: is}
}

// RegisterInventoryRoutes wires the stock item endpoints onto the group.
func RegisterInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	rg.GET("/inventory", h.searchItems)
	rg.POST("/inventory/add", h.addItem)
	rg.PUT("/inventory/:id", h.updateItem)
	rg.DELETE("/inventory/:id", h.deleteItem)
}

// searchItems godoc
// @Summary Search inventory
// @Description Lists stock items, optionally filtered by a text search and a creation date range.
// @Tags inventory
// @Produce json
// @Param search query string false "Matches ref_code, name or category"
// @Param dateFrom query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {array} dto.StockItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventory [get]
func (h *inventoryHandler) searchItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SearchItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	items, err := h.inventoryService.SearchItems(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": clientMessage(err)})
			return
		}
		logger.Error("Failed to search inventory", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStockItemResponseSlice(items))
}

// addItem godoc
// @Summary Add stock item
// @Description Creates a stock item with an opening quantity and prices.
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body dto.StockItemPayload true "Item details"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventory/add [post]
func (h *inventoryHandler) addItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.StockItemPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ref_code and name are required"})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	item, err := h.inventoryService.AddItem(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": clientMessage(err)})
			return
		}
		logger.Error("Failed to add item", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added successfully",
		"item":    dto.ToStockItemResponse(item),
	})
}

// updateItem godoc
// @Summary Update stock item
// @Description Replaces the writable fields of a stock item.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body dto.StockItemPayload true "Item details"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id} [put]
func (h *inventoryHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	var req dto.StockItemPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ref_code and name are required"})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), itemID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		logger.Error("Failed to update item", slog.String("itemID", itemID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item updated successfully",
		"item":    dto.ToStockItemResponse(item),
	})
}

// deleteItem godoc
// @Summary Delete stock item
// @Description Removes a stock item. Recorded transactions keep their snapshots.
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id} [delete]
func (h *inventoryHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	if err := h.inventoryService.DeleteItem(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		logger.Error("Failed to delete item", slog.String("itemID", itemID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Item deleted successfully"})
}
