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

// referenceHandler handles reference report endpoints.
type referenceHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReferenceHandler(rs portssvc.ReportSvcFacade) *referenceHandler {
	return &referenceHandler{reportService: rs}
}

func registerReferenceRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReferenceHandler(reportService)

	rg.GET("/reference-reports", h.listReports)
	rg.POST("/reference-reports/add", h.createReport)
	rg.GET("/reference-reports/:id", h.getReport)
	rg.DELETE("/reference-reports/:id", h.deleteReport)
}

// listReports godoc
// @Summary List reference reports
// @Description Lists saved reference reports, newest first.
// @Tags reference-reports
// @Produce json
// @Success 200 {array} dto.ReferenceReportResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reference-reports [get]
func (h *referenceHandler) listReports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	reports, err := h.reportService.ListReferenceReports(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list reference reports", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reference reports"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReferenceReportResponseSlice(reports))
}

// createReport godoc
// @Summary Save reference report
// @Description Mints a report number and stores the reference report.
// @Tags reference-reports
// @Accept json
// @Produce json
// @Param report body dto.CreateReferenceReportRequest true "Report details"
// @Success 200 {object} dto.CreateReferenceReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reference-reports/add [post]
func (h *referenceHandler) createReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReferenceReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reference data"})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	report, err := h.reportService.CreateReferenceReport(c.Request.Context(), req.ReferenceData, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": clientMessage(err)})
			return
		}
		logger.Error("Failed to save reference report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reference report"})
		return
	}

	c.JSON(http.StatusOK, dto.CreateReferenceReportResponse{
		Message:       "Reference report saved successfully",
		ReportNumber:  report.ReportNumber,
		ReferenceData: dto.ToReferenceReportResponse(report),
		ID:            report.ReportID,
	})
}

// getReport godoc
// @Summary Get reference report
// @Tags reference-reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} dto.ReferenceReportResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reference-reports/{id} [get]
func (h *referenceHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reportID := c.Param("id")

	report, err := h.reportService.GetReferenceReport(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reference report not found"})
			return
		}
		logger.Error("Failed to fetch reference report", slog.String("reportID", reportID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reference report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReferenceReportResponse(report))
}

// deleteReport godoc
// @Summary Delete reference report
// @Tags reference-reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reference-reports/{id} [delete]
func (h *referenceHandler) deleteReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reportID := c.Param("id")

	if err := h.reportService.DeleteReferenceReport(c.Request.Context(), reportID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reference report not found"})
			return
		}
		logger.Error("Failed to delete reference report", slog.String("reportID", reportID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reference report"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Report deleted successfully"})
}
