package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/varvara1412/telegram-bot/internal/domain"
	"github.com/varvara1412/telegram-bot/internal/dto"
	"github.com/varvara1412/telegram-bot/internal/repository"
	"github.com/varvara1412/telegram-bot/pkg/errs"
)

type ShopServiceImpl struct {
	catalogRepo repository.CatalogRepository
	cartRepo    repository.CartRepository
}

func CreateShopService(catalogRepo repository.CatalogRepository, cartRepo repository.CartRepository) ShopService {
	return &ShopServiceImpl{catalogRepo: catalogRepo, cartRepo: cartRepo}
}

func (s *ShopServiceImpl) GetProducts(ctx context.Context) (res []domain.Product, err error) {
	return s.catalogRepo.GetProducts(), nil
}

func (s *ShopServiceImpl) GetProductDetail(ctx context.Context, rawID string) (res domain.Product, err error) {
	productID, err := parseProductID(rawID)
	if err != nil {
		return res, err
	}

	return s.catalogRepo.GetProductByID(productID)
}

// AddProductToCart parses the raw id, records the item, and resolves the
// product for the acknowledgment text by catalog POSITION rather than by id.
// The two resolutions coincide while ids are dense and start at 1; the store
// itself is keyed by the parsed id and is never checked against the catalog.
func (s *ShopServiceImpl) AddProductToCart(ctx context.Context, userID int64, rawID string) (res domain.Product, err error) {
	productID, err := parseProductID(rawID)
	if err != nil {
		return res, err
	}

	err = s.cartRepo.AddItem(ctx, userID, productID)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProductToCart").Msg("")
		return res, err
	}

	return s.catalogRepo.GetProductByPosition(productID)
}

func (s *ShopServiceImpl) GetCartView(ctx context.Context, userID int64) (res dto.CartView, err error) {
	cart, err := s.cartRepo.GetCart(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCartView").Msg("")
		return res, err
	}

	res.Empty = cart.IsEmpty()
	for _, product := range s.catalogRepo.GetProducts() {
		quantity, ok := cart[product.ID]
		if !ok {
			continue
		}
		subtotal := product.Price * float64(quantity)
		res.Lines = append(res.Lines, dto.CartLine{
			Name:     product.Name,
			Quantity: quantity,
			Subtotal: subtotal,
		})
		res.Total += subtotal
	}

	return res, nil
}

func (s *ShopServiceImpl) Checkout(ctx context.Context, userID int64) (cleared bool, err error) {
	cart, err := s.cartRepo.GetCart(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("component", "Checkout").Msg("")
		return false, err
	}

	if cart.IsEmpty() {
		return false, nil
	}

	err = s.cartRepo.ClearCart(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("component", "Checkout").Msg("")
		return false, err
	}

	return true, nil
}

func parseProductID(rawID string) (int, error) {
	productID, err := strconv.Atoi(rawID)
	if err != nil || productID <= 0 {
		return 0, errs.ErrInvalidProductID
	}
	return productID, nil
}
