package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

// ProductRepository provides snapshots of the product catalog. The catalog
// is read-only to this backend.
type ProductRepository interface {
	ReadAll(ctx context.Context) ([]models.Product, error)
}

type RedisProductStore struct {
	client *redis.Client
	key    string
}

func NewProductStore(client *redis.Client) *RedisProductStore {
	return &RedisProductStore{client: client, key: ProductsKey}
}

func (s *RedisProductStore) ReadAll(ctx context.Context) ([]models.Product, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []models.Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, s.key, err)
	}
	return DecodeProducts(raw)
}

// DecodeProducts parses the raw catalog blob. A missing inventory field
// decodes to 0 and counts as out of stock.
func DecodeProducts(raw []byte) ([]models.Product, error) {
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, ProductsKey, err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}
