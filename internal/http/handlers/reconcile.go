package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Mtaasisi/NEON-POS-sub021/internal/reconcile"
	"github.com/Mtaasisi/NEON-POS-sub021/internal/services"
	"github.com/Mtaasisi/NEON-POS-sub021/pkg/models"
)

type ReconcileHandler struct {
	reconcileService *services.ReconcileService
}

func NewReconcileHandler(reconcileService *services.ReconcileService) *ReconcileHandler {
	return &ReconcileHandler{reconcileService: reconcileService}
}

// Import parses a reconciliation file against the tenant catalog
// @Summary Bulk reconciliation import
// @Description Parse and validate a delimited purchase file; returns every row with status plus the accepted items
// @Tags reconcile
// @Accept json
// @Produce json
// @Param request body models.ReconcileImportRequest true "File content"
// @Success 200 {object} models.ReconcileImportResponse
// @Failure 400 {object} map[string]string
// @Router /reconcile/import [post]
func (h *ReconcileHandler) Import(c echo.Context) error {
	tenantID, ok := c.Get("tenant_id").(uuid.UUID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "tenant_id not found"})
	}

	var req models.ReconcileImportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.reconcileService.Import(tenantID, req.Content)
	if err != nil {
		if errors.Is(err, reconcile.ErrNoContent) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "no valid rows found in file"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}

// Template returns the downloadable import template
// @Summary Download import template
// @Tags reconcile
// @Produce plain
// @Success 200 {string} string
// @Router /reconcile/import/template [get]
func (h *ReconcileHandler) Template(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="reconciliation_template.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(reconcile.TemplateCSV()))
}
