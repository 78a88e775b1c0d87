package repository

import (
	"context"
	"sync"

	"github.com/varvara1412/telegram-bot/internal/domain"
)

// LocalCartRepositoryImpl keeps every cart in process memory. Carts are
// created lazily on the first add and survive until the process exits.
// The outer map is guarded so dispatch may run updates for different users
// on separate goroutines.
type LocalCartRepositoryImpl struct {
	mu    sync.RWMutex
	carts map[int64]domain.Cart
}

func CreateLocalCartRepository() CartRepository {
	return &LocalCartRepositoryImpl{carts: make(map[int64]domain.Cart)}
}

func (r *LocalCartRepositoryImpl) GetCart(ctx context.Context, userID int64) (res domain.Cart, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[userID]
	if !ok {
		return domain.Cart{}, nil
	}
	return cart.Clone(), nil
}

func (r *LocalCartRepositoryImpl) AddItem(ctx context.Context, userID int64, productID int) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[userID]
	if !ok {
		cart = domain.Cart{}
		r.carts[userID] = cart
	}
	cart[productID]++

	return nil
}

func (r *LocalCartRepositoryImpl) ClearCart(ctx context.Context, userID int64) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[userID] = domain.Cart{}

	return nil
}
