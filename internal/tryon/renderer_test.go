package tryon

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ecothread_back_end/internal/catalog"
	"ecothread_back_end/internal/models"
	"ecothread_back_end/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	mu      sync.Mutex
	calls   int
	err     error
	blockCh chan struct{}
}

func (f *fakeGenerator) GenerateTryOn(_ context.Context, _, _, _ string, _ models.Product, angle models.Angle) ([]byte, string, error) {
	f.mu.Lock()
	f.calls++
	block := f.blockCh
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	if f.err != nil {
		return nil, "", f.err
	}
	return []byte("png-" + string(angle)), "image/png", nil
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testClone() *models.UserClone {
	return &models.UserClone{
		Front:    "data:image/jpeg;base64,QQ==",
		Gender:   models.GenderMen,
		Analysis: "slim build",
	}
}

func newTestRenderer(gen Generator) *Renderer {
	// pas de stockage objet dans les tests : data URI direct
	return NewRenderer(gen, nil, services.EncodeDataURI)
}

func TestRenderMissingAngleNeverCallsCollaborator(t *testing.T) {
	gen := &fakeGenerator{}
	r := newTestRenderer(gen)
	product := *catalog.ByID("1")

	// back jamais capturé sur ce clone
	_, err := r.Render(context.Background(), "s1", testClone(), product, models.AngleBack)
	assert.ErrorIs(t, err, ErrMissingAngle)

	// clone absent
	_, err = r.Render(context.Background(), "s1", nil, product, models.AngleFront)
	assert.ErrorIs(t, err, ErrMissingAngle)

	assert.Equal(t, 0, gen.callCount())
}

func TestRenderDefaultsToFront(t *testing.T) {
	gen := &fakeGenerator{}
	r := newTestRenderer(gen)

	res, err := r.Render(context.Background(), "s1", testClone(), *catalog.ByID("1"), "")
	require.NoError(t, err)
	assert.Equal(t, models.AngleFront, res.Angle)
	assert.False(t, res.Fallback)
	assert.Contains(t, res.ImageURL, "data:image/png;base64,")
}

func TestRenderCachesPerAngle(t *testing.T) {
	gen := &fakeGenerator{}
	r := newTestRenderer(gen)
	product := *catalog.ByID("1")

	first, err := r.Render(context.Background(), "s1", testClone(), product, models.AngleFront)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := r.Render(context.Background(), "s1", testClone(), product, models.AngleFront)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.ImageURL, second.ImageURL)
	assert.Equal(t, 1, gen.callCount(), "pas de second appel collaborateur")
}

func TestRenderFallsBackToCatalogImage(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("500 from Gemini")}
	r := newTestRenderer(gen)
	product := *catalog.ByID("2")

	res, err := r.Render(context.Background(), "s1", testClone(), product, models.AngleFront)
	require.NoError(t, err, "l'échec du collaborateur ne remonte jamais")
	assert.True(t, res.Fallback)
	assert.Equal(t, product.OriginalImageURL, res.ImageURL)

	// un repli n'est pas mis en cache : le prochain essai ré-invoque
	_, err = r.Render(context.Background(), "s1", testClone(), product, models.AngleFront)
	require.NoError(t, err)
	assert.Equal(t, 2, gen.callCount())
}

func TestRenderInFlightGuardSharesResult(t *testing.T) {
	blockCh := make(chan struct{})
	gen := &fakeGenerator{blockCh: blockCh}
	r := newTestRenderer(gen)
	product := *catalog.ByID("1")

	results := make(chan RenderResult, 2)
	for i := 0; i < 2; i++ {
		go func() {
			res, err := r.Render(context.Background(), "s1", testClone(), product, models.AngleFront)
			require.NoError(t, err)
			results <- res
		}()
	}

	// les deux Render convergent sur un seul appel collaborateur
	require.Eventually(t, func() bool { return gen.callCount() == 1 },
		time.Second, 5*time.Millisecond)
	close(blockCh)

	a, b := <-results, <-results
	assert.Equal(t, a.ImageURL, b.ImageURL)
	assert.Equal(t, 1, gen.callCount())
}

func TestRenderAnglesAreIndependent(t *testing.T) {
	gen := &fakeGenerator{}
	r := newTestRenderer(gen)
	product := *catalog.ByID("1")
	uc := testClone()
	uc.Back = "data:image/jpeg;base64,Qg=="

	front, err := r.Render(context.Background(), "s1", uc, product, models.AngleFront)
	require.NoError(t, err)
	back, err := r.Render(context.Background(), "s1", uc, product, models.AngleBack)
	require.NoError(t, err)

	assert.NotEqual(t, front.ImageURL, back.ImageURL)
	assert.Equal(t, 2, gen.callCount())
}

func TestResetDiscardsCache(t *testing.T) {
	gen := &fakeGenerator{}
	r := newTestRenderer(gen)
	product := *catalog.ByID("1")

	_, err := r.Render(context.Background(), "s1", testClone(), product, models.AngleFront)
	require.NoError(t, err)

	r.Reset("s1", product.ID)

	res, err := r.Render(context.Background(), "s1", testClone(), product, models.AngleFront)
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, 2, gen.callCount())
}
