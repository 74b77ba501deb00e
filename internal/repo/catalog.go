package repo

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mtaasisi/NEON-POS-sub021/pkg/models"
)

// CatalogRepository handles product catalog data access
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetByID gets a product by ID with its variants
func (r *CatalogRepository) GetByID(tenantID, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Variants").Where("id = ? AND tenant_id = ?", id, tenantID).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Create creates a new product with its variants
func (r *CatalogRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update updates a product
func (r *CatalogRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete soft-deletes a product
func (r *CatalogRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Product{}, "id = ?", id).Error
}

// ListActive returns the tenant's full active catalog with variants
// preloaded, in stable order. This is the snapshot the import engine
// builds its index from.
func (r *CatalogRepository) ListActive(tenantID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Preload("Variants", "is_active = ?", true).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Order("sort_order ASC, created_at ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// List returns a paginated product listing
func (r *CatalogRepository) List(tenantID uuid.UUID, limit, offset int) (*models.PaginationResult[models.Product], error) {
	var products []models.Product
	var total int64

	query := r.db.Model(&models.Product{}).Where("tenant_id = ?", tenantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	err := query.
		Preload("Variants").
		Order("sort_order ASC, name ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return &models.PaginationResult[models.Product]{
		Data:       products,
		Total:      total,
		Page:       offset/limit + 1,
		PerPage:    limit,
		TotalPages: totalPages,
	}, nil
}
