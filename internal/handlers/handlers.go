package handlers

import (
	"ecothread_back_end/internal/auth"
	"ecothread_back_end/internal/cart"
	"ecothread_back_end/internal/checkout"
	"ecothread_back_end/internal/clone"
	"ecothread_back_end/internal/orders"
	"ecothread_back_end/internal/tryon"
)

// Handlers regroupe les services injectés ; chaque fichier du package couvre
// un pan de l'API (auth, catalogue, clone, essayage, panier, checkout, staff)
type Handlers struct {
	Auth     *auth.Gateway
	Clones   *clone.Manager
	Renderer *tryon.Renderer
	Carts    *cart.Manager
	Checkout *checkout.Machine
	Ledger   *orders.Ledger
}

func New(gw *auth.Gateway, clones *clone.Manager, renderer *tryon.Renderer, carts *cart.Manager, machine *checkout.Machine, ledger *orders.Ledger) *Handlers {
	return &Handlers{
		Auth:     gw,
		Clones:   clones,
		Renderer: renderer,
		Carts:    carts,
		Checkout: machine,
		Ledger:   ledger,
	}
}
