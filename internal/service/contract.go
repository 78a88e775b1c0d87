package service

import (
	"context"

	"github.com/varvara1412/telegram-bot/internal/domain"
	"github.com/varvara1412/telegram-bot/internal/dto"
)

type ShopService interface {
	GetProducts(ctx context.Context) (res []domain.Product, err error)
	GetProductDetail(ctx context.Context, rawID string) (res domain.Product, err error)
	AddProductToCart(ctx context.Context, userID int64, rawID string) (res domain.Product, err error)
	GetCartView(ctx context.Context, userID int64) (res dto.CartView, err error)
	Checkout(ctx context.Context, userID int64) (cleared bool, err error)
}
