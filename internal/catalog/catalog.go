package catalog

import "ecothread_back_end/internal/models"

// Categories exposées par la boutique (le filtre "All" est géré côté requête)
var Categories = []string{"Outerwear", "Knitwear", "Tops", "Bottoms"}

// products est le catalogue statique : chargé une fois, jamais muté
var products = []models.Product{
	{
		ID:               "1",
		Name:             "1992 Vintage Carhartt Chore Jacket",
		Price:            145,
		Description:      "Faded tan canvas with corduroy collar. Beautiful patina from decades of wear.",
		Category:         "Outerwear",
		Gender:           models.GenderMen,
		Size:             "Large",
		Condition:        models.ConditionExcellent,
		OriginalImageURL: "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?q=80&w=800&auto=format&fit=crop",
	},
	{
		ID:               "2",
		Name:             "Oversized Mohair Argyle Cardigan",
		Price:            85,
		Description:      "Ultra-soft mohair blend in earth tones. Perfect for layering.",
		Category:         "Knitwear",
		Gender:           models.GenderWomen,
		Size:             "XL",
		Condition:        models.ConditionGood,
		OriginalImageURL: "https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?q=80&w=800&auto=format&fit=crop",
	},
	{
		ID:               "3",
		Name:             "80s Levi's 501 Button Fly Denim",
		Price:            110,
		Description:      "Classic straight leg in a medium wash. Made in USA.",
		Category:         "Bottoms",
		Gender:           models.GenderMen,
		Size:             "32x30",
		Condition:        models.ConditionExcellent,
		OriginalImageURL: "https://images.unsplash.com/photo-1542272604-787c3835535d?q=80&w=800&auto=format&fit=crop",
	},
	{
		ID:               "4",
		Name:             "Vintage Silk Abstract Print Shirt",
		Price:            55,
		Description:      "100% heavy silk. Hand-painted aesthetic with mother of pearl buttons.",
		Category:         "Tops",
		Gender:           models.GenderWomen,
		Size:             "Medium",
		Condition:        models.ConditionGood,
		OriginalImageURL: "https://images.unsplash.com/photo-1598033129183-c4f50c717658?q=80&w=800&auto=format&fit=crop",
	},
	{
		ID:               "5",
		Name:             "Rare 70s Leather Biker Jacket",
		Price:            290,
		Description:      "Heavyweight steerhide with original zippers. Incredible vintage grain.",
		Category:         "Outerwear",
		Gender:           models.GenderMen,
		Size:             "Medium",
		Condition:        models.ConditionFair,
		OriginalImageURL: "https://images.unsplash.com/photo-1551028719-00167b16eac5?q=80&w=800&auto=format&fit=crop",
	},
	{
		ID:               "6",
		Name:             "Wool Fisherman's Sweater",
		Price:            75,
		Description:      "Heavy knit Irish wool in cream. Timeless warmth.",
		Category:         "Knitwear",
		Gender:           models.GenderWomen,
		Size:             "Large",
		Condition:        models.ConditionExcellent,
		OriginalImageURL: "https://images.unsplash.com/photo-1556905055-8f358a7a47b2?q=80&w=800&auto=format&fit=crop",
	},
}

// All retourne une copie du catalogue complet
func All() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// ByID retrouve un produit par son id (nil si inconnu)
func ByID(id string) *models.Product {
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p
		}
	}
	return nil
}

// Filter reproduit le filtrage de la vitrine : genre obligatoire si fourni,
// catégorie "All" ou vide = toutes
func Filter(gender, category string) []models.Product {
	out := []models.Product{}
	for _, p := range products {
		if gender != "" && p.Gender != gender {
			continue
		}
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}
