// Package cart implémente le panier : un réducteur pur sur la liste
// des items, couplé à un store qui persiste chaque transition dans le
// stockage clé-valeur.
package cart

import (
	"sort"

	"olyncha_back_end/internal/models"
)

// sameLine : deux items sont "le même" ssi id, taille, lait et sucre
// sont égaux ET que leurs ensembles de suppléments coïncident.
// Les suppléments gardent leur ordre de saisie pour l'affichage, la
// comparaison se fait sur une copie triée.
func sameLine(a, b models.LineItem) bool {
	if a.ID != b.ID || a.Size != b.Size || a.Milk != b.Milk || a.Sweetness != b.Sweetness {
		return false
	}
	if len(a.AddOns) != len(b.AddOns) {
		return false
	}
	as := append([]string(nil), a.AddOns...)
	bs := append([]string(nil), b.AddOns...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// Add fusionne l'item avec une entrée identique (somme des quantités),
// sinon l'ajoute en fin de liste. N'ouvre jamais le panier : c'est à
// l'appelant de déclencher l'ouverture s'il le souhaite.
func Add(items []models.LineItem, item models.LineItem) []models.LineItem {
	next := append([]models.LineItem(nil), items...)
	for i := range next {
		if sameLine(next[i], item) {
			next[i].Quantity += item.Quantity
			return next
		}
	}
	return append(next, item)
}

// Remove supprime l'entrée dont l'id correspond, no-op si absente.
func Remove(items []models.LineItem, id string) []models.LineItem {
	next := make([]models.LineItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			next = append(next, item)
		}
	}
	return next
}

// UpdateQuantity : quantité ≤ 0 équivaut à Remove, sinon la quantité
// est posée telle quelle (pas de re-fusion).
func UpdateQuantity(items []models.LineItem, id string, quantity int) []models.LineItem {
	if quantity <= 0 {
		return Remove(items, id)
	}
	next := append([]models.LineItem(nil), items...)
	for i := range next {
		if next[i].ID == id {
			next[i].Quantity = quantity
		}
	}
	return next
}
