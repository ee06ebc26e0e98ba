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

// statementHandler handles saved statement endpoints.
type statementHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newStatementHandler(rs portssvc.ReportSvcFacade) *statementHandler {
	return &statementHandler{reportService: rs}
}

func registerStatementRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newStatementHandler(reportService)

	rg.GET("/statements", h.listStatements)
	rg.POST("/statements/add", h.saveStatement)
	rg.DELETE("/statements/:id", h.deleteStatement)
}

// listStatements godoc
// @Summary List statements
// @Description Lists saved statement snapshots, newest first.
// @Tags statements
// @Produce json
// @Success 200 {array} dto.StatementResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /statements [get]
func (h *statementHandler) listStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	statements, err := h.reportService.ListStatements(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list statements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statements"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponseSlice(statements))
}

// saveStatement godoc
// @Summary Save statement
// @Description Stores a statement snapshot as submitted by the client.
// @Tags statements
// @Accept json
// @Produce json
// @Param statement body dto.AddStatementRequest true "Statement payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /statements/add [post]
func (h *statementHandler) saveStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reportData is required"})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	statement, err := h.reportService.SaveStatement(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": clientMessage(err)})
			return
		}
		logger.Error("Failed to save statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save statement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Report saved successfully",
		"id":      statement.StatementID,
	})
}

// deleteStatement godoc
// @Summary Delete statement
// @Tags statements
// @Produce json
// @Param id path string true "Statement ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /statements/{id} [delete]
func (h *statementHandler) deleteStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	statementID := c.Param("id")

	if err := h.reportService.DeleteStatement(c.Request.Context(), statementID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		logger.Error("Failed to delete statement", slog.String("statementID", statementID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete statement"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Report deleted successfully"})
}
