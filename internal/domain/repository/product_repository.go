package repository

import "github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListByCategory(categoryID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	CountByCategory(categoryID string) (int, error)
}
