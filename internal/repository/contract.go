package repository

import (
	"context"

	"github.com/varvara1412/telegram-bot/internal/domain"
)

type CatalogRepository interface {
	GetProducts() []domain.Product
	GetProductByID(id int) (res domain.Product, err error)
	GetProductByPosition(pos int) (res domain.Product, err error)
}

type CartRepository interface {
	GetCart(ctx context.Context, userID int64) (res domain.Cart, err error)
	AddItem(ctx context.Context, userID int64, productID int) (err error)
	ClearCart(ctx context.Context, userID int64) (err error)
}
