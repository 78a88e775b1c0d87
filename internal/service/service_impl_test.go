package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varvara1412/telegram-bot/internal/domain"
	"github.com/varvara1412/telegram-bot/internal/dto"
	"github.com/varvara1412/telegram-bot/internal/repository"
	"github.com/varvara1412/telegram-bot/pkg/errs"
)

func newService(products ...domain.Product) (ShopService, repository.CartRepository) {
	catalogRepo := repository.CreateCatalogRepositoryWithProducts(products)
	cartRepo := repository.CreateLocalCartRepository()
	return CreateShopService(catalogRepo, cartRepo), cartRepo
}

func defaultProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Smart Laser Chase", Price: 29.99},
		{ID: 2, Name: "Feather Whirlwind", Price: 19.95},
		{ID: 3, Name: "Interactive Puzzle Box", Price: 34.50},
	}
}

func TestGetProductDetail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(defaultProducts()...)

	product, err := svc.GetProductDetail(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Feather Whirlwind", product.Name)

	_, err = svc.GetProductDetail(ctx, "999")
	assert.ErrorIs(t, err, errs.ErrProductNotFound)

	_, err = svc.GetProductDetail(ctx, "banana")
	assert.ErrorIs(t, err, errs.ErrInvalidProductID)
}

func TestAddProductToCart_RejectsMalformedIDs(t *testing.T) {
	ctx := context.Background()
	svc, cartRepo := newService(defaultProducts()...)

	for _, rawID := range []string{"", "banana", "-1", "0", "1.5"} {
		_, err := svc.AddProductToCart(ctx, 42, rawID)
		assert.ErrorIs(t, err, errs.ErrInvalidProductID, "rawID=%q", rawID)
	}

	cart, err := cartRepo.GetCart(ctx, 42)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestAddProductToCart_DoesNotCheckCatalogMembership(t *testing.T) {
	ctx := context.Background()
	svc, cartRepo := newService(defaultProducts()...)

	// id 7 has no catalog entry; the item is stored anyway and only the
	// acknowledgment lookup fails.
	_, err := svc.AddProductToCart(ctx, 42, "7")
	assert.ErrorIs(t, err, errs.ErrProductNotFound)

	cart, err := cartRepo.GetCart(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, domain.Cart{7: 1}, cart)
}

// The acknowledgment name comes from a 1-based positional lookup, not an id
// match. With dense ids starting at 1 the two coincide; this pins down what
// happens the moment they do not.
func TestAddProductToCart_ResolvesNameByPositionNotID(t *testing.T) {
	ctx := context.Background()
	svc, cartRepo := newService(
		domain.Product{ID: 10, Name: "first by position", Price: 1},
		domain.Product{ID: 2, Name: "second by position", Price: 2},
	)

	product, err := svc.AddProductToCart(ctx, 42, "2")
	require.NoError(t, err)
	assert.Equal(t, "second by position", product.Name)
	assert.NotEqual(t, 10, product.ID)

	// The cart itself is keyed by the parsed id.
	cart, err := cartRepo.GetCart(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, domain.Cart{2: 1}, cart)
}

func TestGetCartView(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(defaultProducts()...)

	_, err := svc.AddProductToCart(ctx, 42, "1")
	require.NoError(t, err)
	_, err = svc.AddProductToCart(ctx, 42, "1")
	require.NoError(t, err)
	_, err = svc.AddProductToCart(ctx, 42, "3")
	require.NoError(t, err)

	view, err := svc.GetCartView(ctx, 42)
	require.NoError(t, err)

	assert.False(t, view.Empty)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, dto.CartLine{Name: "Smart Laser Chase", Quantity: 2, Subtotal: 59.98}, view.Lines[0])
	assert.Equal(t, dto.CartLine{Name: "Interactive Puzzle Box", Quantity: 1, Subtotal: 34.50}, view.Lines[1])
	assert.InDelta(t, 94.48, view.Total, 0.001)
}

func TestGetCartView_SkipsDeletedProducts(t *testing.T) {
	ctx := context.Background()
	svc, cartRepo := newService(defaultProducts()...)

	require.NoError(t, cartRepo.AddItem(ctx, 42, 1))
	require.NoError(t, cartRepo.AddItem(ctx, 42, 999))

	view, err := svc.GetCartView(ctx, 42)
	require.NoError(t, err)

	assert.False(t, view.Empty)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "Smart Laser Chase", view.Lines[0].Name)
	assert.InDelta(t, 29.99, view.Total, 0.001)

	// Pure derivation: a second call with no mutation in between is identical.
	again, err := svc.GetCartView(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, view, again)
}

func TestGetCartView_OnlyDeletedProductsIsNotEmpty(t *testing.T) {
	ctx := context.Background()
	svc, cartRepo := newService(defaultProducts()...)

	require.NoError(t, cartRepo.AddItem(ctx, 42, 999))

	view, err := svc.GetCartView(ctx, 42)
	require.NoError(t, err)

	assert.False(t, view.Empty)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.Total)
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	svc, cartRepo := newService(defaultProducts()...)

	cleared, err := svc.Checkout(ctx, 42)
	require.NoError(t, err)
	assert.False(t, cleared)

	_, err = svc.AddProductToCart(ctx, 42, "1")
	require.NoError(t, err)

	cleared, err = svc.Checkout(ctx, 42)
	require.NoError(t, err)
	assert.True(t, cleared)

	cart, err := cartRepo.GetCart(ctx, 42)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	cleared, err = svc.Checkout(ctx, 42)
	require.NoError(t, err)
	assert.False(t, cleared)
}
