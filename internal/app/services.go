package app

import (
	"gorm.io/gorm"

	"github.com/Mtaasisi/NEON-POS-sub021/internal/auth"
	"github.com/Mtaasisi/NEON-POS-sub021/internal/repo"
	"github.com/Mtaasisi/NEON-POS-sub021/internal/services"
)

// Services holds all application services
type Services struct {
	DB               *gorm.DB
	AuthService      *auth.Service
	UserRepo         *repo.UserRepository
	CatalogRepo      *repo.CatalogRepository
	ReconcileService *services.ReconcileService
}

// NewServices creates a new services container
func NewServices(db *gorm.DB) *Services {
	userRepo := repo.NewUserRepository(db)
	catalogRepo := repo.NewCatalogRepository(db)

	authService := auth.NewService(userRepo)
	reconcileService := services.NewReconcileService(catalogRepo)

	return &Services{
		DB:               db,
		AuthService:      authService,
		UserRepo:         userRepo,
		CatalogRepo:      catalogRepo,
		ReconcileService: reconcileService,
	}
}
