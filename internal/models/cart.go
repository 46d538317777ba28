package models

// CartItem est une ligne de panier : le produit complet plus une quantité.
// L'id produit est unique dans un panier : ré-ajouter incrémente la quantité.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartTotal calcule la somme exacte prix × quantité : fonction pure
func CartTotal(items []CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
