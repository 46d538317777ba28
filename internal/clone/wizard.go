package clone

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"

	"ecothread_back_end/internal/models"
	"ecothread_back_end/internal/store"
)

// Analyzer est le collaborateur d'analyse morphologique (cf. services.GeminiClient)
type Analyzer interface {
	AnalyzeBody(ctx context.Context, frontDataURI, gender string) (string, error)
}

// Étapes du wizard : gender-select → upload → (terminé, implicite)
type Step string

const (
	StepGender Step = "gender"
	StepUpload Step = "upload"
)

var (
	ErrNoWizard         = errors.New("aucun wizard en cours pour cette session")
	ErrInvalidGender    = errors.New("genre invalide")
	ErrInvalidAngle     = errors.New("angle inconnu")
	ErrInvalidImage     = errors.New("le fichier n'est pas une image lisible")
	ErrFrontRequired    = errors.New("la vue frontale est requise")
	ErrFinishInProgress = errors.New("création du clone déjà en cours")
)

// wizardState est l'état éphémère d'un wizard ouvert (durée de vie du modal)
type wizardState struct {
	step      Step
	gender    string
	images    map[models.Angle]string
	finishing bool
}

// Manager pilote le wizard de création de clone et possède le clone persisté.
// Un Finish réussi remplace le clone entier : jamais de fusion partielle.
type Manager struct {
	blobs    store.BlobStore
	analyzer Analyzer

	mu      sync.Mutex
	wizards map[string]*wizardState // session → wizard ouvert
}

func NewManager(blobs store.BlobStore, analyzer Analyzer) *Manager {
	return &Manager{
		blobs:    blobs,
		analyzer: analyzer,
		wizards:  make(map[string]*wizardState),
	}
}

// WizardView est l'instantané renvoyé aux handlers
type WizardView struct {
	Step     Step                  `json:"step"`
	Gender   string                `json:"gender,omitempty"`
	Captured map[models.Angle]bool `json:"captured"`
}

func (m *Manager) view(w *wizardState) WizardView {
	captured := make(map[models.Angle]bool, len(models.Angles))
	for _, a := range models.Angles {
		captured[a] = w.images[a] != ""
	}
	return WizardView{Step: w.step, Gender: w.gender, Captured: captured}
}

// StartWizard (ré)initialise le wizard : étape genre, tous les slots vides
func (m *Manager) StartWizard(session string) WizardView {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := &wizardState{step: StepGender, images: make(map[models.Angle]string)}
	m.wizards[session] = w
	return m.view(w)
}

// SetGender enregistre le genre et avance à l'étape upload
func (m *Manager) SetGender(session, gender string) (WizardView, error) {
	if gender != models.GenderMen && gender != models.GenderWomen {
		return WizardView{}, ErrInvalidGender
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wizards[session]
	if !ok {
		return WizardView{}, ErrNoWizard
	}
	w.gender = gender
	w.step = StepUpload
	return m.view(w), nil
}

// Back revient à l'étape genre sans toucher aux slots déjà capturés
func (m *Manager) Back(session string) (WizardView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wizards[session]
	if !ok {
		return WizardView{}, ErrNoWizard
	}
	w.step = StepGender
	return m.view(w), nil
}

// CaptureImage décode l'upload en data URI et remplit le slot de l'angle.
// Un payload illisible laisse le slot intact.
func (m *Manager) CaptureImage(session string, angle models.Angle, raw []byte) (WizardView, error) {
	if !angle.Valid() {
		return WizardView{}, ErrInvalidAngle
	}
	if len(raw) == 0 {
		return WizardView{}, ErrInvalidImage
	}

	mimeType := http.DetectContentType(raw)
	if !strings.HasPrefix(mimeType, "image/") {
		return WizardView{}, ErrInvalidImage
	}

	dataURI := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw)

	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wizards[session]
	if !ok {
		return WizardView{}, ErrNoWizard
	}
	w.images[angle] = dataURI
	return m.view(w), nil
}

// RemoveImage vide le slot d'un angle
func (m *Manager) RemoveImage(session string, angle models.Angle) (WizardView, error) {
	if !angle.Valid() {
		return WizardView{}, ErrInvalidAngle
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wizards[session]
	if !ok {
		return WizardView{}, ErrNoWizard
	}
	delete(w.images, angle)
	return m.view(w), nil
}

// Finish assemble et persiste le clone : la vue frontale est obligatoire,
// l'analyse morphologique est consultée, puis le clone remplace intégralement
// l'ancien. Un Finish déjà en vol n'est pas ré-émis (garde de ré-entrée).
func (m *Manager) Finish(ctx context.Context, session string) (*models.UserClone, error) {
	m.mu.Lock()
	w, ok := m.wizards[session]
	if !ok {
		m.mu.Unlock()
		return nil, ErrNoWizard
	}
	if w.images[models.AngleFront] == "" {
		m.mu.Unlock()
		return nil, ErrFrontRequired
	}
	if w.finishing {
		m.mu.Unlock()
		return nil, ErrFinishInProgress
	}
	w.finishing = true

	uc := models.UserClone{
		Front:        w.images[models.AngleFront],
		Back:         w.images[models.AngleBack],
		ThreeQuarter: w.images[models.AngleThreeQuarter],
		Gender:       w.gender,
	}
	m.mu.Unlock()

	// Point de suspension : l'appel collaborateur se fait hors verrou.
	// En cas d'échec l'analyse dégrade vers un résumé générique : même
	// politique de repli silencieux que le renderer d'essayage.
	analysis, err := m.analyzer.AnalyzeBody(ctx, uc.Front, uc.Gender)
	if err != nil {
		log.Printf("⚠️ Analyse du clone indisponible, résumé générique utilisé: %v", err)
		analysis = "Athletic, balanced proportions, medium height"
	}
	uc.Analysis = analysis

	data, err := json.Marshal(uc)
	if err != nil {
		m.clearFinishing(session)
		return nil, err
	}
	if err := m.blobs.Set(ctx, store.KeyClonePrefix+session, data); err != nil {
		m.clearFinishing(session)
		return nil, err
	}

	// Le wizard se ferme, le clone devient l'état ambiant de la session
	m.mu.Lock()
	delete(m.wizards, session)
	m.mu.Unlock()

	log.Printf("✅ Clone IA créé pour la session %s (%s)", session, uc.Gender)
	return &uc, nil
}

func (m *Manager) clearFinishing(session string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.wizards[session]; ok {
		w.finishing = false
	}
}

// State retourne la vue du wizard ouvert
func (m *Manager) State(session string) (WizardView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wizards[session]
	if !ok {
		return WizardView{}, ErrNoWizard
	}
	return m.view(w), nil
}

// GetClone recharge le clone persisté ; (nil, nil) si absent : l'absence de
// clone est un état valide, pas une erreur
func (m *Manager) GetClone(ctx context.Context, session string) (*models.UserClone, error) {
	data, err := m.blobs.Get(ctx, store.KeyClonePrefix+session)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var uc models.UserClone
	if err := json.Unmarshal(data, &uc); err != nil {
		return nil, err
	}
	return &uc, nil
}

// ClearClone supprime le clone persisté
func (m *Manager) ClearClone(ctx context.Context, session string) error {
	return m.blobs.Remove(ctx, store.KeyClonePrefix+session)
}
