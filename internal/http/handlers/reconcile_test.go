package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestTemplateDownload(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reconcile/import/template", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewReconcileHandler(nil)
	if err := h.Template(c); err != nil {
		t.Fatal(err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, expected 200", rec.Code)
	}
	if !strings.Contains(rec.Header().Get(echo.HeaderContentDisposition), "reconciliation_template.csv") {
		t.Errorf("missing attachment filename, got %q", rec.Header().Get(echo.HeaderContentDisposition))
	}

	body := rec.Body.String()
	if !strings.Contains(body, "sku,variant_label,quantity,cost_price,notes") {
		t.Error("template must carry the column header line")
	}
	if !strings.HasPrefix(body, "#") {
		t.Error("template must start with instructional comment lines")
	}
}
