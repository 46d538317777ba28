package orders

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"ecothread_back_end/internal/models"
	"ecothread_back_end/internal/store"
)

var (
	ErrOrderNotFound = errors.New("commande introuvable")
	ErrUnknownStatus = errors.New("statut inconnu")
)

// Ledger possède le registre des commandes : append-only, à l'exception du
// statut qui est réassignable librement par la console staff. Le registre
// entier est relu et réécrit à chaque mutation.
type Ledger struct {
	blobs store.BlobStore
	mu    sync.Mutex // sérialise les read-modify-write du blob
}

func NewLedger(blobs store.BlobStore) *Ledger {
	return &Ledger{blobs: blobs}
}

func (l *Ledger) load(ctx context.Context) ([]models.Order, error) {
	data, err := l.blobs.Get(ctx, store.KeyOrders)
	if errors.Is(err, store.ErrNotFound) {
		return []models.Order{}, nil
	}
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (l *Ledger) save(ctx context.Context, orders []models.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return l.blobs.Set(ctx, store.KeyOrders, data)
}

// Append ajoute une commande et persiste le registre complet
func (l *Ledger) Append(ctx context.Context, order models.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders, err := l.load(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, order)
	return l.save(ctx, orders)
}

// UpdateStatus réécrit le statut d'une commande : seul champ mutable.
// Pas de progression forcée : la console staff assigne librement.
func (l *Ledger) UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, ErrUnknownStatus
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	orders, err := l.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
			if err := l.save(ctx, orders); err != nil {
				return nil, err
			}
			updated := orders[i]
			return &updated, nil
		}
	}
	return nil, ErrOrderNotFound
}

// ListAll retourne le registre complet, trié par date de création
// décroissante (les deux consommateurs trient ainsi)
func (l *Ledger) ListAll(ctx context.Context) ([]models.Order, error) {
	orders, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// ListForUser filtre le registre sur le propriétaire
func (l *Ledger) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	all, err := l.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := []models.Order{}
	for _, o := range all {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// Get retrouve une commande par id
func (l *Ledger) Get(ctx context.Context, orderID string) (*models.Order, error) {
	orders, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			o := orders[i]
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}
