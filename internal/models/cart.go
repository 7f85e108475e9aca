package models

// LineItem représente un produit personnalisé dans le panier.
// Le prix unitaire inclut déjà la taille et les suppléments choisis.
type LineItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Size      string   `json:"size"`
	Milk      string   `json:"milk,omitempty"`
	Sweetness string   `json:"sweetness,omitempty"`
	AddOns    []string `json:"addOns"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Image     string   `json:"image,omitempty"`
	BasePrice float64  `json:"basePrice"`
}

// CartState : items dans l'ordre d'insertion + flag UI isOpen (jamais persisté)
type CartState struct {
	Items  []LineItem `json:"items"`
	IsOpen bool       `json:"isOpen"`
}
