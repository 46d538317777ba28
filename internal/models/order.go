package models

import "time"

// Statuts de commande : la console staff peut assigner librement
// n'importe lequel des quatre (pas de progression forcée)
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
)

// ValidStatus vérifie qu'un statut fait partie des quatre connus
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// ShippingAddress : les trois champs sont requis avant création de commande
type ShippingAddress struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// Complete vérifie que tous les champs de livraison sont renseignés
func (s ShippingAddress) Complete() bool {
	return s.FullName != "" && s.Email != "" && s.Address != ""
}

// Order est un instantané figé au moment de l'achat : seul Status est
// mutable après création, tout le reste est immuable.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id,omitempty"`
	Items           []CartItem      `json:"items"`
	Total           float64         `json:"total"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UserClone       UserClone       `json:"user_clone"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	TrackingNumber  string          `json:"tracking_number"`
}
