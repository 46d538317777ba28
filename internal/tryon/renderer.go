package tryon

import (
	"context"
	"errors"
	"log"
	"sync"

	"ecothread_back_end/internal/models"

	"github.com/google/uuid"
)

// Generator est le collaborateur de génération d'images (cf. services.GeminiClient)
type Generator interface {
	GenerateTryOn(ctx context.Context, sourceDataURI, gender, analysis string, product models.Product, angle models.Angle) ([]byte, string, error)
}

// ImageStore pousse une image générée vers le stockage objet et retourne son
// URL. nil = pas de stockage, les résultats restent en data URI.
type ImageStore interface {
	SaveImage(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

// DataURIEncoder évite d'importer services ici
type DataURIEncoder func(mimeType string, data []byte) string

var (
	ErrMissingAngle = errors.New("photo manquante pour cet angle")
	ErrInvalidAngle = errors.New("angle inconnu")
)

// RenderResult distingue un rendu réussi d'un repli sur l'image catalogue :
// Fallback lève l'ambiguïté que la valeur de retour seule ne portait pas
type RenderResult struct {
	ImageURL string       `json:"image_url"`
	Angle    models.Angle `json:"angle"`
	Fallback bool         `json:"fallback"`
	Cached   bool         `json:"cached"`
}

// call est une génération en vol ; les appels concurrents pour la même clé
// attendent son résultat au lieu de ré-invoquer le collaborateur
type call struct {
	done   chan struct{}
	result RenderResult
}

// previewSession : cache par angle pour la durée d'une session d'aperçu
type previewSession struct {
	cache    map[models.Angle]RenderResult
	inflight map[models.Angle]*call
}

// Renderer demande au collaborateur une image composée clone + vêtement.
// Garantie : au plus un appel collaborateur en vol par (session, produit, angle).
type Renderer struct {
	generator Generator
	images    ImageStore
	encode    DataURIEncoder

	mu       sync.Mutex
	previews map[string]*previewSession // session + "|" + productID
}

func NewRenderer(generator Generator, images ImageStore, encode DataURIEncoder) *Renderer {
	return &Renderer{
		generator: generator,
		images:    images,
		encode:    encode,
		previews:  make(map[string]*previewSession),
	}
}

func previewKey(session, productID string) string {
	return session + "|" + productID
}

// Render compose le vêtement sur le clone à l'angle demandé.
// Préconditions : le clone possède une photo pour cet angle, sinon
// ErrMissingAngle sans appel collaborateur. Échec du collaborateur →
// repli silencieux sur l'image catalogue (Fallback=true), jamais d'erreur.
func (r *Renderer) Render(ctx context.Context, session string, uc *models.UserClone, product models.Product, angle models.Angle) (RenderResult, error) {
	if angle == "" {
		angle = models.AngleFront
	}
	if !angle.Valid() {
		return RenderResult{}, ErrInvalidAngle
	}
	if uc == nil || uc.Image(angle) == "" {
		return RenderResult{}, ErrMissingAngle
	}

	key := previewKey(session, product.ID)

	r.mu.Lock()
	ps, ok := r.previews[key]
	if !ok {
		ps = &previewSession{
			cache:    make(map[models.Angle]RenderResult),
			inflight: make(map[models.Angle]*call),
		}
		r.previews[key] = ps
	}

	if cached, ok := ps.cache[angle]; ok {
		r.mu.Unlock()
		cached.Cached = true
		return cached, nil
	}

	if c, ok := ps.inflight[angle]; ok {
		// déjà en vol : on partage le résultat de l'appel existant
		r.mu.Unlock()
		<-c.done
		return c.result, nil
	}

	c := &call{done: make(chan struct{})}
	ps.inflight[angle] = c
	r.mu.Unlock()

	c.result = r.generate(ctx, uc, product, angle)

	r.mu.Lock()
	// seuls les rendus réussis sont mis en cache : un repli reste re-tentable
	if !c.result.Fallback {
		ps.cache[angle] = c.result
	}
	delete(ps.inflight, angle)
	r.mu.Unlock()

	close(c.done)
	return c.result, nil
}

func (r *Renderer) generate(ctx context.Context, uc *models.UserClone, product models.Product, angle models.Angle) RenderResult {
	data, mimeType, err := r.generator.GenerateTryOn(ctx, uc.Image(angle), uc.Gender, uc.Analysis, product, angle)
	if err != nil {
		log.Printf("⚠️ Génération échouée (%s, angle %s), repli sur l'image catalogue: %v", product.ID, angle, err)
		return RenderResult{ImageURL: product.OriginalImageURL, Angle: angle, Fallback: true}
	}

	url := ""
	if r.images != nil {
		objectName := uuid.NewString() + ".png"
		if stored, err := r.images.SaveImage(ctx, objectName, data, mimeType); err == nil {
			url = stored
		} else {
			log.Printf("⚠️ Stockage MinIO indisponible, data URI renvoyé: %v", err)
		}
	}
	if url == "" {
		url = r.encode(mimeType, data)
	}

	return RenderResult{ImageURL: url, Angle: angle}
}

// Reset jette le cache d'aperçu (action explicite de l'utilisateur) ;
// la vitrine ré-affiche l'image catalogue
func (r *Renderer) Reset(session, productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.previews, previewKey(session, productID))
}
