package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"ecothread_back_end/internal/cart"
	"ecothread_back_end/internal/models"
	"ecothread_back_end/internal/orders"
	"ecothread_back_end/internal/store"
	"ecothread_back_end/internal/utils"

	"github.com/google/uuid"
)

// États du tunnel d'achat : cart → shipping → success,
// avec retour shipping → cart
type State string

const (
	StateCart     State = "cart"
	StateShipping State = "shipping"
	StateSuccess  State = "success"
)

var (
	ErrEmptyCart     = errors.New("le panier est vide")
	ErrMissingFields = errors.New("nom, email et adresse sont requis")
	ErrWrongState    = errors.New("transition non autorisée depuis cet état")
)

// CloneSource fournit le clone actif de la session (nil si absent)
type CloneSource interface {
	GetClone(ctx context.Context, session string) (*models.UserClone, error)
}

// Notifier envoie la confirmation de commande : best-effort, jamais bloquant
type Notifier func(models.Order) error

// Machine pilote le checkout d'une session et produit les instantanés de
// commande versés au registre
type Machine struct {
	blobs  store.BlobStore
	carts  *cart.Manager
	clones CloneSource
	ledger *orders.Ledger
	notify Notifier
}

func NewMachine(blobs store.BlobStore, carts *cart.Manager, clones CloneSource, ledger *orders.Ledger, notify Notifier) *Machine {
	return &Machine{blobs: blobs, carts: carts, clones: clones, ledger: ledger, notify: notify}
}

func checkoutKey(session string) string {
	return store.KeyCheckoutPrefix + session
}

type persisted struct {
	State       State  `json:"state"`
	LastOrderID string `json:"last_order_id,omitempty"`
}

func (m *Machine) load(ctx context.Context, session string) (persisted, error) {
	data, err := m.blobs.Get(ctx, checkoutKey(session))
	if errors.Is(err, store.ErrNotFound) {
		return persisted{State: StateCart}, nil
	}
	if err != nil {
		return persisted{}, err
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return persisted{}, err
	}
	return p, nil
}

func (m *Machine) save(ctx context.Context, session string, p persisted) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return m.blobs.Set(ctx, checkoutKey(session), data)
}

// State retourne l'état courant du tunnel (cart par défaut)
func (m *Machine) State(ctx context.Context, session string) (State, error) {
	p, err := m.load(ctx, session)
	if err != nil {
		return "", err
	}
	return p.State, nil
}

// Open (ré)ouvre le tunnel : depuis success on repart à cart
func (m *Machine) Open(ctx context.Context, session string) (State, error) {
	return StateCart, m.save(ctx, session, persisted{State: StateCart})
}

// Begin passe cart → shipping ; bloqué tant que le panier est vide
func (m *Machine) Begin(ctx context.Context, session string) (State, error) {
	items, err := m.carts.Get(ctx, session)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", ErrEmptyCart
	}
	return StateShipping, m.save(ctx, session, persisted{State: StateShipping})
}

// Back revient de shipping à cart
func (m *Machine) Back(ctx context.Context, session string) (State, error) {
	p, err := m.load(ctx, session)
	if err != nil {
		return "", err
	}
	if p.State != StateShipping {
		return "", ErrWrongState
	}
	return StateCart, m.save(ctx, session, persisted{State: StateCart})
}

// Complete finalise l'achat : valide la livraison, fige l'instantané de
// commande (id, suivi, lignes, total, clone-ou-vide, adresse, Pending, date),
// le verse au registre, vide le panier et avance à success. La confirmation
// e-mail est best-effort et n'échoue jamais le checkout.
func (m *Machine) Complete(ctx context.Context, session, userID string, shipping models.ShippingAddress) (*models.Order, error) {
	p, err := m.load(ctx, session)
	if err != nil {
		return nil, err
	}
	if p.State != StateShipping {
		return nil, ErrWrongState
	}
	if !shipping.Complete() {
		return nil, ErrMissingFields
	}

	items, err := m.carts.Get(ctx, session)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// clone absent → clone vide par défaut dans l'instantané
	uc, err := m.clones.GetClone(ctx, session)
	if err != nil {
		return nil, err
	}
	cloneSnapshot := models.UserClone{}
	if uc != nil {
		cloneSnapshot = *uc
	}

	order := models.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           items,
		Total:           models.CartTotal(items),
		Status:          models.StatusPending,
		CreatedAt:       time.Now().UTC(),
		UserClone:       cloneSnapshot,
		ShippingAddress: shipping,
		TrackingNumber:  utils.GenerateTrackingNumber(),
	}

	if err := m.ledger.Append(ctx, order); err != nil {
		return nil, err
	}
	if err := m.carts.Clear(ctx, session); err != nil {
		return nil, err
	}
	if err := m.save(ctx, session, persisted{State: StateSuccess, LastOrderID: order.ID}); err != nil {
		return nil, err
	}

	if m.notify != nil {
		if err := m.notify(order); err != nil {
			log.Printf("⚠️ Confirmation e-mail non envoyée pour %s: %v", order.ID, err)
		}
	}

	log.Printf("✅ Commande %s créée (%.2f$, suivi %s)", order.ID, order.Total, order.TrackingNumber)
	return &order, nil
}
