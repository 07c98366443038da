package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Quantity no se toca aquí:
// se maneja exclusivamente vía movimientos del ledger.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movementRepo repository.StockMovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, movementRepo repository.StockMovementRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, movementRepo: movementRepo}
}

// Create crea un producto con cantidad 0. SKU único si se proporciona.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.MinStockLevel < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.SKU != "" {
		existing, _ := uc.repo.GetBySKU(in.SKU)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		Quantity:      0,
		MinStockLevel: in.MinStockLevel,
		Price:         in.Price,
		CategoryID:    in.CategoryID,
		Status:        entity.ProductStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return ToProductResponse(product), nil
}

// Update actualiza campos descriptivos. Nunca Quantity.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.MinStockLevel != nil {
		if *in.MinStockLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStockLevel = *in.MinStockLevel
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			category, err := uc.categoryRepo.GetByID(*in.CategoryID)
			if err != nil {
				return nil, err
			}
			if category == nil {
				return nil, domain.ErrNotFound
			}
		}
		product.CategoryID = *in.CategoryID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *ToProductResponse(p))
	}
	return out, nil
}

// Deactivate desactiva un producto (soft delete). No hay borrado físico
// mientras existan movimientos que lo referencien.
func (uc *ProductUseCase) Deactivate(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}

// ToProductResponse mapea la entidad al DTO con la clasificación derivada.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Quantity:      p.Quantity,
		MinStockLevel: p.MinStockLevel,
		Price:         p.Price,
		CategoryID:    p.CategoryID,
		Status:        p.Status,
		LowStock:      p.IsLowStock(nil),
		OutOfStock:    p.IsOutOfStock(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
