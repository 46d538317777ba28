package cart

import (
	"context"
	"encoding/json"
	"errors"

	"ecothread_back_end/internal/models"
	"ecothread_back_end/internal/store"
)

// Manager possède le panier d'une session : une ligne au plus par produit,
// ré-ajouter incrémente la quantité. Le panier entier est relu et réécrit
// à chaque mutation (modèle blob store).
type Manager struct {
	blobs store.BlobStore
}

func NewManager(blobs store.BlobStore) *Manager {
	return &Manager{blobs: blobs}
}

func cartKey(session string) string {
	return store.KeyCartPrefix + session
}

// Get recharge le panier ; un panier jamais écrit est simplement vide
func (m *Manager) Get(ctx context.Context, session string) ([]models.CartItem, error) {
	data, err := m.blobs.Get(ctx, cartKey(session))
	if errors.Is(err, store.ErrNotFound) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (m *Manager) save(ctx context.Context, session string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return m.blobs.Set(ctx, cartKey(session), data)
}

// Add insère une ligne quantité 1, ou incrémente la ligne existante.
// L'opération réussit toujours.
func (m *Manager) Add(ctx context.Context, session string, product models.Product) ([]models.CartItem, error) {
	items, err := m.Get(ctx, session)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ID == product.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{Product: product, Quantity: 1})
	}

	if err := m.save(ctx, session, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove supprime la ligne du produit ; no-op si absente
func (m *Manager) Remove(ctx context.Context, session, productID string) ([]models.CartItem, error) {
	items, err := m.Get(ctx, session)
	if err != nil {
		return nil, err
	}

	newItems := []models.CartItem{}
	for _, item := range items {
		if item.ID != productID {
			newItems = append(newItems, item)
		}
	}

	if err := m.save(ctx, session, newItems); err != nil {
		return nil, err
	}
	return newItems, nil
}

// Total : somme exacte prix × quantité sur toutes les lignes
func (m *Manager) Total(ctx context.Context, session string) (float64, error) {
	items, err := m.Get(ctx, session)
	if err != nil {
		return 0, err
	}
	return models.CartTotal(items), nil
}

// Clear vide entièrement le panier (checkout réussi)
func (m *Manager) Clear(ctx context.Context, session string) error {
	return m.blobs.Remove(ctx, cartKey(session))
}
