// Package catalog contient le catalogue produit statique du storefront.
// C'est la source de vérité côté serveur pour les prix de base, tailles
// et suppléments ; le panier, lui, fige le prix au moment de l'ajout.
package catalog

import (
	"sort"
	"strings"

	"olyncha_back_end/internal/models"
)

var (
	drinkSizes = []models.SizeOption{
		{Name: "Small", Price: 4.95},
		{Name: "Medium", Price: 5.95},
		{Name: "Large", Price: 6.95},
	}
	milkOptions     = []string{"Whole Milk", "Oat Milk", "Almond Milk", "Soy Milk"}
	sweetnessLevels = []string{"0%", "25%", "50%", "75%", "100%"}
	drinkAddOns     = []models.AddOn{
		{Name: "Extra Shot", Price: 0.75},
		{Name: "Whipped Cream", Price: 0.50},
		{Name: "Boba Pearls", Price: 0.75},
		{Name: "Vanilla Syrup", Price: 0.50},
	}
)

var products = map[string]models.Product{
	"matcha-latte": {
		ID:              "matcha-latte",
		Name:            "Matcha Latte",
		Description:     "Our signature premium matcha from Uji, Kyoto, whisked into silky steamed milk",
		BasePrice:       5.95,
		Category:        "Drinks",
		Sizes:           drinkSizes,
		MilkOptions:     milkOptions,
		SweetnessLevels: sweetnessLevels,
		AddOns:          drinkAddOns,
		Tags:            []string{"signature", "hot", "iced"},
		Featured:        true,
	},
	"strawberry-matcha": {
		ID:              "strawberry-matcha",
		Name:            "Strawberry Matcha",
		Description:     "Strawberry puree layered under premium matcha and milk",
		BasePrice:       6.50,
		Category:        "Drinks",
		Sizes:           drinkSizes,
		MilkOptions:     milkOptions,
		SweetnessLevels: sweetnessLevels,
		AddOns:          drinkAddOns,
		Tags:            []string{"fruity", "iced"},
		Featured:        true,
	},
	"matcha-lemonade": {
		ID:              "matcha-lemonade",
		Name:            "Matcha Lemonade",
		Description:     "Refreshing lemonade with a shot of ceremonial matcha",
		BasePrice:       5.50,
		Category:        "Drinks",
		Sizes:           drinkSizes,
		SweetnessLevels: sweetnessLevels,
		AddOns: []models.AddOn{
			{Name: "Extra Shot", Price: 0.75},
			{Name: "Boba Pearls", Price: 0.75},
		},
		Tags: []string{"iced", "dairy-free"},
	},
	"iced-matcha": {
		ID:              "iced-matcha",
		Name:            "Iced Matcha",
		Description:     "Pure matcha shaken over ice, no milk, no fuss",
		BasePrice:       4.95,
		Category:        "Drinks",
		Sizes:           drinkSizes,
		SweetnessLevels: sweetnessLevels,
		AddOns:          drinkAddOns,
		Tags:            []string{"iced", "dairy-free"},
	},
	"matcha-ice-cream": {
		ID:          "matcha-ice-cream",
		Name:        "Matcha Ice Cream",
		Description: "House-churned matcha soft serve",
		BasePrice:   6.99,
		Category:    "Desserts",
		AddOns: []models.AddOn{
			{Name: "Whipped Cream", Price: 0.50},
			{Name: "Red Bean", Price: 0.75},
		},
		Tags: []string{"dessert"},
	},
	"matcha-tiramisu": {
		ID:          "matcha-tiramisu",
		Name:        "Matcha Tiramisu",
		Description: "Mascarpone layers dusted with ceremonial grade matcha",
		BasePrice:   8.99,
		Category:    "Desserts",
		Tags:        []string{"dessert"},
	},
	"matcha-cookie": {
		ID:          "matcha-cookie",
		Name:        "Matcha Cookie",
		Description: "White chocolate matcha cookie, baked daily",
		BasePrice:   3.50,
		Category:    "Desserts",
		Tags:        []string{"dessert", "snack"},
	},
	"ceremonial-matcha-tin": {
		ID:          "ceremonial-matcha-tin",
		Name:        "Ceremonial Matcha Tin",
		Description: "30g tin of first-harvest ceremonial matcha to whisk at home",
		BasePrice:   24.00,
		Category:    "Retail",
		Tags:        []string{"retail", "gift"},
	},
}

// Get retourne le produit par id (slug).
func Get(id string) (models.Product, bool) {
	p, ok := products[id]
	return p, ok
}

// All retourne le catalogue trié par id pour un ordre stable.
func All() []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Filter applique les filtres catégorie puis recherche plein-texte
// naïve sur nom + description (repli quand Elasticsearch est absent).
func Filter(category, search string) []models.Product {
	result := All()

	if category != "" && !strings.EqualFold(category, "all") {
		filtered := []models.Product{}
		for _, p := range result {
			if strings.EqualFold(p.Category, category) {
				filtered = append(filtered, p)
			}
		}
		result = filtered
	}

	if search != "" {
		term := strings.ToLower(search)
		filtered := []models.Product{}
		for _, p := range result {
			if strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Description), term) {
				filtered = append(filtered, p)
			}
		}
		result = filtered
	}

	return result
}

// Categories liste les catégories distinctes du catalogue.
func Categories() []string {
	seen := map[string]bool{}
	result := []string{}
	for _, p := range All() {
		if !seen[p.Category] {
			seen[p.Category] = true
			result = append(result, p.Category)
		}
	}
	sort.Strings(result)
	return result
}
