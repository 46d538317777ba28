package catalog

import (
	"testing"

	"ecothread_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	p := ByID("3")
	require.NotNil(t, p)
	assert.Equal(t, "80s Levi's 501 Button Fly Denim", p.Name)
	assert.Equal(t, 110.0, p.Price)

	assert.Nil(t, ByID("999"))
}

func TestByIDReturnsCopy(t *testing.T) {
	p := ByID("1")
	require.NotNil(t, p)
	p.Price = 0

	again := ByID("1")
	assert.Equal(t, 145.0, again.Price)
}

func TestFilter(t *testing.T) {
	men := Filter(models.GenderMen, "All")
	for _, p := range men {
		assert.Equal(t, models.GenderMen, p.Gender)
	}
	assert.Len(t, men, 3)

	womenKnit := Filter(models.GenderWomen, "Knitwear")
	assert.Len(t, womenKnit, 2)

	all := Filter("", "")
	assert.Len(t, all, len(All()))
}
