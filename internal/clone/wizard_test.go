package clone

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ecothread_back_end/internal/models"
	"ecothread_back_end/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAnalyzer simule le collaborateur d'analyse morphologique
type fakeAnalyzer struct {
	mu      sync.Mutex
	calls   int
	result  string
	err     error
	blockCh chan struct{} // si non-nil, l'appel bloque jusqu'à fermeture
}

func (f *fakeAnalyzer) AnalyzeBody(_ context.Context, _, _ string) (string, error) {
	f.mu.Lock()
	f.calls++
	block := f.blockCh
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return f.result, f.err
}

func (f *fakeAnalyzer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// jpegBytes : un en-tête JPEG suffisant pour http.DetectContentType
var jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

func TestFinishRequiresFrontAngle(t *testing.T) {
	analyzer := &fakeAnalyzer{result: "slim build"}
	m := NewManager(store.NewMemoryStore(), analyzer)

	m.StartWizard("s1")
	_, err := m.SetGender("s1", models.GenderWomen)
	require.NoError(t, err)

	// back seul ne suffit pas : front reste obligatoire
	_, err = m.CaptureImage("s1", models.AngleBack, jpegBytes)
	require.NoError(t, err)

	uc, err := m.Finish(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrFrontRequired)
	assert.Nil(t, uc)
	assert.Equal(t, 0, analyzer.callCount(), "le collaborateur ne doit pas être appelé")
}

func TestFinishAssemblesAndPersistsClone(t *testing.T) {
	analyzer := &fakeAnalyzer{result: "slim build"}
	blobs := store.NewMemoryStore()
	m := NewManager(blobs, analyzer)

	m.StartWizard("s1")
	_, err := m.SetGender("s1", models.GenderWomen)
	require.NoError(t, err)
	_, err = m.CaptureImage("s1", models.AngleFront, jpegBytes)
	require.NoError(t, err)

	uc, err := m.Finish(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, uc)

	assert.NotEmpty(t, uc.Front)
	assert.Empty(t, uc.Back)
	assert.Empty(t, uc.ThreeQuarter)
	assert.Equal(t, models.GenderWomen, uc.Gender)
	assert.Equal(t, "slim build", uc.Analysis)
	assert.True(t, uc.IsActive())

	// le clone persiste et se recharge tel quel
	reloaded, err := m.GetClone(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, *uc, *reloaded)

	// le wizard est fermé après un Finish réussi
	_, err = m.State("s1")
	assert.ErrorIs(t, err, ErrNoWizard)
}

func TestFinishReplacesCloneWholesale(t *testing.T) {
	analyzer := &fakeAnalyzer{result: "athletic"}
	m := NewManager(store.NewMemoryStore(), analyzer)

	m.StartWizard("s1")
	m.SetGender("s1", models.GenderMen)
	m.CaptureImage("s1", models.AngleFront, jpegBytes)
	m.CaptureImage("s1", models.AngleBack, jpegBytes)
	first, err := m.Finish(context.Background(), "s1")
	require.NoError(t, err)
	assert.NotEmpty(t, first.Back)

	// nouveau wizard : le clone précédent est remplacé entièrement,
	// jamais fusionné
	m.StartWizard("s1")
	m.SetGender("s1", models.GenderWomen)
	m.CaptureImage("s1", models.AngleFront, jpegBytes)
	second, err := m.Finish(context.Background(), "s1")
	require.NoError(t, err)

	reloaded, err := m.GetClone(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, models.GenderWomen, reloaded.Gender)
	assert.Empty(t, reloaded.Back, "pas de fusion avec l'ancien clone")
	assert.Equal(t, second.Front, reloaded.Front)
}

func TestFinishDegradesWhenAnalyzerFails(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("quota dépassé")}
	m := NewManager(store.NewMemoryStore(), analyzer)

	m.StartWizard("s1")
	m.SetGender("s1", models.GenderMen)
	m.CaptureImage("s1", models.AngleFront, jpegBytes)

	uc, err := m.Finish(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "Athletic, balanced proportions, medium height", uc.Analysis)
}

func TestFinishReentryGuard(t *testing.T) {
	blockCh := make(chan struct{})
	analyzer := &fakeAnalyzer{result: "slim", blockCh: blockCh}
	m := NewManager(store.NewMemoryStore(), analyzer)

	m.StartWizard("s1")
	m.SetGender("s1", models.GenderMen)
	m.CaptureImage("s1", models.AngleFront, jpegBytes)

	done := make(chan error, 1)
	go func() {
		_, err := m.Finish(context.Background(), "s1")
		done <- err
	}()

	// attendre que le premier Finish soit suspendu chez le collaborateur
	require.Eventually(t, func() bool { return analyzer.callCount() == 1 },
		time.Second, 5*time.Millisecond)

	_, err := m.Finish(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrFinishInProgress)

	close(blockCh)
	require.NoError(t, <-done)
	assert.Equal(t, 1, analyzer.callCount())
}

func TestCaptureImageRejectsNonImage(t *testing.T) {
	m := NewManager(store.NewMemoryStore(), &fakeAnalyzer{})

	m.StartWizard("s1")
	m.SetGender("s1", models.GenderMen)

	_, err := m.CaptureImage("s1", models.AngleFront, []byte("pas une image du tout"))
	assert.ErrorIs(t, err, ErrInvalidImage)

	v, err := m.State("s1")
	require.NoError(t, err)
	assert.False(t, v.Captured[models.AngleFront], "le slot reste vide")
}

func TestRemoveImageClearsSlot(t *testing.T) {
	m := NewManager(store.NewMemoryStore(), &fakeAnalyzer{})

	m.StartWizard("s1")
	m.SetGender("s1", models.GenderMen)
	m.CaptureImage("s1", models.AngleThreeQuarter, jpegBytes)

	v, _ := m.State("s1")
	assert.True(t, v.Captured[models.AngleThreeQuarter])

	_, err := m.RemoveImage("s1", models.AngleThreeQuarter)
	require.NoError(t, err)
	v, _ = m.State("s1")
	assert.False(t, v.Captured[models.AngleThreeQuarter])
}

func TestGetCloneAbsentIsNil(t *testing.T) {
	m := NewManager(store.NewMemoryStore(), &fakeAnalyzer{})

	uc, err := m.GetClone(context.Background(), "jamais-vue")
	require.NoError(t, err)
	assert.Nil(t, uc, "l'absence de clone est un état valide")
}
