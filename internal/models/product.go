package models

// Genre d'un produit ou d'un clone
const (
	GenderMen   = "Men"
	GenderWomen = "Women"
)

// État d'une pièce de seconde main
const (
	ConditionExcellent = "Excellent"
	ConditionGood      = "Good"
	ConditionFair      = "Fair"
)

// Product est une entrée du catalogue statique : jamais modifiée après chargement
type Product struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	Description      string  `json:"description"`
	Category         string  `json:"category"`
	Size             string  `json:"size"`
	Gender           string  `json:"gender"`
	Condition        string  `json:"condition"`
	OriginalImageURL string  `json:"original_image_url"`
}
