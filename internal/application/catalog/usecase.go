package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// UseCase implementa el catálogo: categorías y productos. Acceso a datos puro
// más los chequeos referenciales (producto → categoría existente, borrado de
// categoría restringido si tiene productos).
type UseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewUseCase construye el caso de uso del catálogo.
func NewUseCase(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{categoryRepo: categoryRepo, productRepo: productRepo}
}

// CreateCategory crea una categoría; el nombre no puede ser vacío.
func (uc *UseCase) CreateCategory(in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	cat := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.categoryRepo.Create(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// GetCategory devuelve una categoría por ID.
func (uc *UseCase) GetCategory(id string) (*dto.CategoryResponse, error) {
	cat, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(cat), nil
}

// ListCategories devuelve todas las categorías.
func (uc *UseCase) ListCategories() ([]dto.CategoryResponse, error) {
	rows, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(rows))
	for _, c := range rows {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// UpdateCategory actualiza nombre y descripción.
func (uc *UseCase) UpdateCategory(id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	cat.Name = in.Name
	cat.Description = in.Description
	if err := uc.categoryRepo.Update(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// DeleteCategory borra una categoría con semántica Restrict: falla con
// ErrCategoryInUse si todavía hay productos que la referencian.
func (uc *UseCase) DeleteCategory(id string) error {
	cat, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	n, err := uc.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrCategoryInUse
	}
	return uc.categoryRepo.Delete(id)
}

// CreateProduct crea un producto tras verificar que la categoría exista.
func (uc *UseCase) CreateProduct(in dto.ProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.UnitPrice <= 0 {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	p := &entity.Product{
		ID:         uuid.New().String(),
		Name:       in.Name,
		CategoryID: in.CategoryID,
		UnitPrice:  decimal.NewFromFloat(in.UnitPrice),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.productRepo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetProduct devuelve un producto por ID.
func (uc *UseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// ListProducts lista productos con paginación.
func (uc *UseCase) ListProducts(page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	rows, err := uc.productRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductResponses(rows), nil
}

// ListProductsByCategory lista los productos de una categoría.
func (uc *UseCase) ListProductsByCategory(categoryID string) ([]dto.ProductResponse, error) {
	rows, err := uc.productRepo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(rows), nil
}

// UpdateProduct actualiza un producto; re-verifica la categoría y refresca
// updated_at en cada mutación.
func (uc *UseCase) UpdateProduct(id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.UnitPrice <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	cat, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	p.Name = in.Name
	p.CategoryID = in.CategoryID
	p.UnitPrice = decimal.NewFromFloat(in.UnitPrice)
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		UnitPrice:  p.UnitPrice.InexactFloat64(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toProductResponses(rows []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, *toProductResponse(p))
	}
	return out
}
