package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varvara1412/telegram-bot/internal/domain"
)

func TestGetCart_NoPriorInteraction(t *testing.T) {
	repo := CreateLocalCartRepository()

	cart, err := repo.GetCart(context.Background(), 42)

	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestAddItem_IncrementsQuantity(t *testing.T) {
	ctx := context.Background()
	repo := CreateLocalCartRepository()

	require.NoError(t, repo.AddItem(ctx, 42, 1))
	require.NoError(t, repo.AddItem(ctx, 42, 3))
	require.NoError(t, repo.AddItem(ctx, 42, 1))

	cart, err := repo.GetCart(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, domain.Cart{1: 2, 3: 1}, cart)
}

func TestAddItem_UsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := CreateLocalCartRepository()

	require.NoError(t, repo.AddItem(ctx, 42, 1))
	require.NoError(t, repo.AddItem(ctx, 77, 2))

	cartA, err := repo.GetCart(ctx, 42)
	require.NoError(t, err)
	cartB, err := repo.GetCart(ctx, 77)
	require.NoError(t, err)

	assert.Equal(t, domain.Cart{1: 1}, cartA)
	assert.Equal(t, domain.Cart{2: 1}, cartB)
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	repo := CreateLocalCartRepository()

	require.NoError(t, repo.AddItem(ctx, 42, 1))
	require.NoError(t, repo.ClearCart(ctx, 42))

	cart, err := repo.GetCart(ctx, 42)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestClearCart_AlreadyEmpty(t *testing.T) {
	ctx := context.Background()
	repo := CreateLocalCartRepository()

	require.NoError(t, repo.ClearCart(ctx, 42))

	cart, err := repo.GetCart(ctx, 42)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestGetCart_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := CreateLocalCartRepository()

	require.NoError(t, repo.AddItem(ctx, 42, 1))

	cart, err := repo.GetCart(ctx, 42)
	require.NoError(t, err)
	cart[1] = 99

	stored, err := repo.GetCart(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, domain.Cart{1: 1}, stored)
}
