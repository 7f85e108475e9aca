// Package pricing regroupe les fonctions pures de calcul des prix.
// Aucun arrondi interne : le formatage à deux décimales est réservé
// à l'affichage pour éviter d'accumuler des erreurs d'arrondi.
package pricing

import "olyncha_back_end/internal/models"

const (
	TaxRate               = 0.08
	DeliveryFee           = 3.99
	FreeDeliveryThreshold = 25.00
)

// UnitPrice calcule le prix unitaire d'un item personnalisé :
// prix de la taille choisie (ou basePrice si la taille est inconnue)
// + prix de chaque supplément présent dans le catalogue du produit.
// Les suppléments inconnus comptent pour 0. Indépendant de l'ordre.
func UnitPrice(product models.Product, size string, addOns []string) float64 {
	price := product.BasePrice
	for _, s := range product.Sizes {
		if s.Name == size {
			price = s.Price
			break
		}
	}

	for _, name := range addOns {
		for _, a := range product.AddOns {
			if a.Name == name {
				price += a.Price
				break
			}
		}
	}

	return price
}

func Subtotal(items []models.LineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Tax : taxe fixe de 8% sur le sous-total
func Tax(items []models.LineItem) float64 {
	return Subtotal(items) * TaxRate
}

// DeliveryFeeFor : livraison gratuite à partir de 25$, sinon 3.99$
func DeliveryFeeFor(items []models.LineItem) float64 {
	if Subtotal(items) >= FreeDeliveryThreshold {
		return 0
	}
	return DeliveryFee
}

func Total(items []models.LineItem) float64 {
	return Subtotal(items) + Tax(items) + DeliveryFeeFor(items)
}

// ItemCount : somme des quantités du panier
func ItemCount(items []models.LineItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
