package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"

	"ecothread_back_end/internal/models"
	"ecothread_back_end/internal/store"
	"ecothread_back_end/internal/utils"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errors.New("un compte avec cet email existe déjà")
	ErrInvalidCredentials = errors.New("email ou mot de passe incorrect")
)

// Gateway expose le contrat minimal register/login. Le stockage interne est
// durci (Argon2id salé) sans changer le contrat : l'appelant ne voit que la
// vue session-safe, jamais de mot de passe.
type Gateway struct {
	blobs store.BlobStore
	mu    sync.Mutex // sérialise les read-modify-write du registre
}

func NewGateway(blobs store.BlobStore) *Gateway {
	return &Gateway{blobs: blobs}
}

func (g *Gateway) load(ctx context.Context) ([]models.UserRecord, error) {
	data, err := g.blobs.Get(ctx, store.KeyUsers)
	if errors.Is(err, store.ErrNotFound) {
		return []models.UserRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []models.UserRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (g *Gateway) save(ctx context.Context, records []models.UserRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return g.blobs.Set(ctx, store.KeyUsers, data)
}

// Register crée un compte local ; l'email doit être libre
func (g *Gateway) Register(ctx context.Context, fullName, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	g.mu.Lock()
	defer g.mu.Unlock()

	records, err := g.load(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, r := range records {
		if r.Email == email {
			return models.User{}, ErrEmailTaken
		}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	record := models.UserRecord{
		User: models.User{
			ID:       uuid.NewString(),
			Email:    email,
			FullName: fullName,
		},
		PasswordHash: hash,
	}
	records = append(records, record)

	if err := g.save(ctx, records); err != nil {
		return models.User{}, err
	}

	log.Printf("🆕 Compte créé : %s", email)
	return record.User, nil
}

// Login valide les identifiants et retourne la vue session-safe
func (g *Gateway) Login(ctx context.Context, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	g.mu.Lock()
	defer g.mu.Unlock()

	records, err := g.load(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, r := range records {
		if r.Email != email {
			continue
		}
		ok, err := utils.VerifyPassword(password, r.PasswordHash)
		if err != nil || !ok {
			return models.User{}, ErrInvalidCredentials
		}
		return r.User, nil
	}
	return models.User{}, ErrInvalidCredentials
}

// Get retrouve la vue session-safe d'un compte par id (middleware /me)
func (g *Gateway) Get(ctx context.Context, userID string) (models.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	records, err := g.load(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, r := range records {
		if r.ID == userID {
			return r.User, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}
