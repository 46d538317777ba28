package cart

import (
	"context"
	"testing"

	"ecothread_back_end/internal/catalog"
	"ecothread_back_end/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIncrementsExistingLine(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemoryStore())
	p := *catalog.ByID("1")

	items, err := m.Add(ctx, "s1", p)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	items, err = m.Add(ctx, "s1", p)
	require.NoError(t, err)
	require.Len(t, items, 1, "jamais deux lignes pour le même produit")
	assert.Equal(t, 2, items[0].Quantity)
}

func TestTotal(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemoryStore())

	// produit "3" à 110 + produit "5" à 290 → 400
	_, err := m.Add(ctx, "s1", *catalog.ByID("3"))
	require.NoError(t, err)
	_, err = m.Add(ctx, "s1", *catalog.ByID("5"))
	require.NoError(t, err)

	total, err := m.Total(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 400.0, total)

	// quantité 2 sur le produit "3"
	_, err = m.Add(ctx, "s1", *catalog.ByID("3"))
	require.NoError(t, err)
	total, _ = m.Total(ctx, "s1")
	assert.Equal(t, 510.0, total)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemoryStore())

	m.Add(ctx, "s1", *catalog.ByID("1"))
	m.Add(ctx, "s1", *catalog.ByID("2"))

	items, err := m.Remove(ctx, "s1", "1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)

	// no-op sur un id absent
	items, err = m.Remove(ctx, "s1", "999")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	// tout retirer → total 0
	_, err = m.Remove(ctx, "s1", "2")
	require.NoError(t, err)
	total, _ := m.Total(ctx, "s1")
	assert.Zero(t, total)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemoryStore())

	m.Add(ctx, "s1", *catalog.ByID("1"))

	items, err := m.Get(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemoryStore())

	m.Add(ctx, "s1", *catalog.ByID("1"))
	require.NoError(t, m.Clear(ctx, "s1"))

	items, err := m.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
