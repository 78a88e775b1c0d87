package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/varvara1412/telegram-bot/internal/domain"
	"github.com/varvara1412/telegram-bot/pkg/errs"
)

// RedisCartRepositoryImpl stores one hash per user keyed cart:<userID>,
// field = product id, value = quantity. Optional backend: carts survive a
// bot restart when enabled, the default remains in-memory.
type RedisCartRepositoryImpl struct {
	client *redis.Client
}

func CreateRedisCartRepository(ctx context.Context, addr string) (CartRepository, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis at %s: %w", addr, err)
	}
	return &RedisCartRepositoryImpl{client: client}, nil
}

func cartKey(userID int64) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (r *RedisCartRepositoryImpl) GetCart(ctx context.Context, userID int64) (res domain.Cart, err error) {
	fields, err := r.client.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		log.Error().Err(err).Str("component", "GetCart").Msg("")
		return res, errs.ErrInternalServer
	}

	res = domain.Cart{}
	for field, value := range fields {
		productID, err := strconv.Atoi(field)
		if err != nil {
			log.Error().Err(err).Str("component", "GetCart").Msg("")
			continue
		}
		quantity, err := strconv.Atoi(value)
		if err != nil {
			log.Error().Err(err).Str("component", "GetCart").Msg("")
			continue
		}
		res[productID] = quantity
	}

	return res, nil
}

func (r *RedisCartRepositoryImpl) AddItem(ctx context.Context, userID int64, productID int) (err error) {
	err = r.client.HIncrBy(ctx, cartKey(userID), strconv.Itoa(productID), 1).Err()
	if err != nil {
		log.Error().Err(err).Str("component", "AddItem").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *RedisCartRepositoryImpl) ClearCart(ctx context.Context, userID int64) (err error) {
	err = r.client.Del(ctx, cartKey(userID)).Err()
	if err != nil {
		log.Error().Err(err).Str("component", "ClearCart").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}
