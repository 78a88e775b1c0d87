package repository

import (
	"github.com/varvara1412/telegram-bot/internal/domain"
	"github.com/varvara1412/telegram-bot/pkg/errs"
)

var catalog = []domain.Product{
	{
		ID:          1,
		Name:        "Smart Laser Chase",
		Description: "Automatic rotating laser toy with 3 modes",
		Price:       29.99,
		Image:       "https://example.com/laser.jpg",
		Link:        "https://example.com/laser-product",
	},
	{
		ID:          2,
		Name:        "Feather Whirlwind",
		Description: "Electronic feather spinner with timer",
		Price:       19.95,
		Image:       "https://example.com/feather.jpg",
		Link:        "https://example.com/feather-product",
	},
	{
		ID:          3,
		Name:        "Interactive Puzzle Box",
		Description: "Treat-dispensing puzzle challenge toy",
		Price:       34.50,
		Image:       "https://example.com/puzzle.jpg",
		Link:        "https://example.com/puzzle-product",
	},
}

type CatalogRepositoryImpl struct {
	products []domain.Product
}

// CreateCatalogRepository returns the built-in catalog. The product set is
// fixed for the lifetime of the process.
func CreateCatalogRepository() CatalogRepository {
	return &CatalogRepositoryImpl{products: catalog}
}

// CreateCatalogRepositoryWithProducts is used by tests that need a catalog
// with gaps or a custom ordering.
func CreateCatalogRepositoryWithProducts(products []domain.Product) CatalogRepository {
	return &CatalogRepositoryImpl{products: products}
}

func (r *CatalogRepositoryImpl) GetProducts() []domain.Product {
	return r.products
}

func (r *CatalogRepositoryImpl) GetProductByID(id int) (res domain.Product, err error) {
	for _, product := range r.products {
		if product.ID == id {
			return product, nil
		}
	}
	return res, errs.ErrProductNotFound
}

// GetProductByPosition resolves a product by its 1-based place in the
// definition order. The add-to-cart acknowledgment resolves names this way,
// which matches id lookup only while ids stay dense and start at 1.
func (r *CatalogRepositoryImpl) GetProductByPosition(pos int) (res domain.Product, err error) {
	if pos < 1 || pos > len(r.products) {
		return res, errs.ErrProductNotFound
	}
	return r.products[pos-1], nil
}
