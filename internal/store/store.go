package store

import (
	"context"
	"errors"
)

// Clés du blob store : chaque clé est lue et réécrite en entier à chaque
// mutation, sans verrou optimiste (usage mono-session assumé)
const (
	KeyClonePrefix    = "eco_thread_clone_v2:"
	KeyCartPrefix     = "eco_thread_cart:"
	KeyCheckoutPrefix = "eco_thread_checkout:"
	KeyUsers          = "eco_thread_users"
	KeyOrders         = "eco_thread_orders"
)

// ErrNotFound : la clé n'existe pas dans le store
var ErrNotFound = errors.New("clé introuvable")

// BlobStore est la passerelle de persistance : get/set/remove de blobs JSON
// par clé string. Redis en prod, mémoire dans les tests.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
