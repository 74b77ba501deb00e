package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Mtaasisi/NEON-POS-sub021/internal/repo"
	"github.com/Mtaasisi/NEON-POS-sub021/pkg/models"
)

type CatalogHandler struct {
	catalogRepo *repo.CatalogRepository
}

func NewCatalogHandler(catalogRepo *repo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalogRepo: catalogRepo}
}

// List returns the tenant's products with variants
// @Summary List products
// @Tags catalog
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResult[models.Product]
// @Failure 401 {object} map[string]string
// @Router /products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	tenantID, ok := c.Get("tenant_id").(uuid.UUID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "tenant_id not found"})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	result, err := h.catalogRepo.List(tenantID, limit, (page-1)*limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

// Create creates a product with its variants
// @Summary Create product
// @Tags catalog
// @Accept json
// @Produce json
// @Param product body models.Product true "Product"
// @Success 201 {object} models.Product
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	tenantID, ok := c.Get("tenant_id").(uuid.UUID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "tenant_id not found"})
	}

	var product models.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&product); err != nil {
		return err
	}

	product.TenantID = tenantID
	for i := range product.Variants {
		product.Variants[i].TenantID = tenantID
	}

	if err := h.catalogRepo.Create(&product); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, product)
}

// GetByID returns one product with its variants
// @Summary Get product
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *CatalogHandler) GetByID(c echo.Context) error {
	tenantID, ok := c.Get("tenant_id").(uuid.UUID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "tenant_id not found"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product id"})
	}

	product, err := h.catalogRepo.GetByID(tenantID, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
	}

	return c.JSON(http.StatusOK, product)
}
