package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stocklane/inventory_backend/internal/dto"
	"github.com/stocklane/inventory_backend/internal/middleware"
	"github.com/stocklane/inventory_backend/internal/pdf"
)

// pdfHandler renders single-page PDF documents from client-submitted data.
type pdfHandler struct{}

func registerPDFRoutes(rg *gin.RouterGroup) {
	h := &pdfHandler{}

	rg.POST("/generate-purchase-pdf", h.purchasePDF)
	rg.POST("/generate-sales-pdf", h.salesPDF)
	rg.POST("/generate-reference-report-pdf", h.referencePDF)
	rg.POST("/generate-inventory-report-pdf", h.inventoryPDF)
}

func (h *pdfHandler) servePDF(c *gin.Context, content []byte, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", content)
}

// purchasePDF godoc
// @Summary Generate purchase order PDF
// @Tags pdf
// @Accept json
// @Produce application/pdf
// @Param purchase body dto.PurchasePDFRequest true "Purchase details"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /generate-purchase-pdf [post]
func (h *pdfHandler) purchasePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PurchasePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PurchaseData == nil || len(req.PurchaseData.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid purchase data"})
		return
	}

	content, filename, err := pdf.RenderPurchaseOrder(req.PurchaseData)
	if err != nil {
		logger.Error("Failed to render purchase PDF", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	h.servePDF(c, content, filename)
}

// salesPDF godoc
// @Summary Generate sales invoice PDF
// @Tags pdf
// @Accept json
// @Produce application/pdf
// @Param sale body dto.SalesPDFRequest true "Sale details"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /generate-sales-pdf [post]
func (h *pdfHandler) salesPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SalesPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SalesData == nil || len(req.SalesData.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sales data"})
		return
	}

	content, filename, err := pdf.RenderSalesInvoice(req.SalesData)
	if err != nil {
		logger.Error("Failed to render sales PDF", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	h.servePDF(c, content, filename)
}

// referencePDF godoc
// @Summary Generate reference report PDF
// @Tags pdf
// @Accept json
// @Produce application/pdf
// @Param report body dto.ReferencePDFRequest true "Report details"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /generate-reference-report-pdf [post]
func (h *pdfHandler) referencePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReferencePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ReferenceData == nil || len(req.ReferenceData.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reference data"})
		return
	}

	content, filename, err := pdf.RenderReferenceReport(req.ReferenceData)
	if err != nil {
		logger.Error("Failed to render reference PDF", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	h.servePDF(c, content, filename)
}

// inventoryPDF godoc
// @Summary Generate inventory report PDF
// @Tags pdf
// @Accept json
// @Produce application/pdf
// @Param report body dto.InventoryReportPDFRequest true "Report details"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /generate-inventory-report-pdf [post]
func (h *pdfHandler) inventoryPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.InventoryReportPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ReportData == nil || len(req.ReportData.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report data"})
		return
	}

	content, filename, err := pdf.RenderInventoryReport(req.ReportData)
	if err != nil {
		logger.Error("Failed to render inventory PDF", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	h.servePDF(c, content, filename)
}
