package handlers

import (
	"net/http"

	"olyncha_back_end/internal/catalog"
	"olyncha_back_end/internal/models"
	"olyncha_back_end/internal/pricing"

	"github.com/gin-gonic/gin"
)

// cartPayload : l'état du panier + les totaux dérivés (jamais stockés,
// recalculés à chaque lecture).
func cartPayload(items []models.LineItem, isOpen bool) gin.H {
	return gin.H{
		"items":       items,
		"isOpen":      isOpen,
		"itemCount":   pricing.ItemCount(items),
		"subtotal":    pricing.Subtotal(items),
		"tax":         pricing.Tax(items),
		"deliveryFee": pricing.DeliveryFeeFor(items),
		"total":       pricing.Total(items),
	}
}

//
// 🟢 GET /api/cart
//
func GetCart(c *gin.Context) {
	sid := sessionID(c)
	items := CartStore.Items(c.Request.Context(), sid)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": cartPayload(items, CartStore.IsOpen(sid))})
}

//
// 🟢 POST /api/cart/items
//
func AddToCart(c *gin.Context) {
	var input models.LineItem
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Données invalides"})
		return
	}

	if input.Quantity <= 0 {
		input.Quantity = 1
	}
	if input.AddOns == nil {
		input.AddOns = []string{}
	}

	// Prix absent → calculé une seule fois ici depuis le catalogue
	// (taille + suppléments) ; il ne sera plus jamais recalculé.
	if input.Price == 0 {
		if product, ok := catalog.Get(input.ID); ok {
			input.Price = pricing.UnitPrice(product, input.Size, input.AddOns)
			input.BasePrice = product.BasePrice
			if input.Name == "" {
				input.Name = product.Name
			}
			if input.Image == "" {
				input.Image = product.Image
			}
		}
	}

	sid := sessionID(c)
	items := CartStore.AddItem(c.Request.Context(), sid, input)

	// l'ajout n'ouvre pas le panier : le client décide via /open
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Produit ajouté au panier",
		"data":    cartPayload(items, CartStore.IsOpen(sid)),
	})
}

//
// 🔁 PATCH /api/cart/items/:id
//
func UpdateCartQuantity(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Données invalides"})
		return
	}

	sid := sessionID(c)
	items := CartStore.UpdateQuantity(c.Request.Context(), sid, c.Param("id"), input.Quantity)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": cartPayload(items, CartStore.IsOpen(sid))})
}

//
// ❌ DELETE /api/cart/items/:id
//
func RemoveFromCart(c *gin.Context) {
	sid := sessionID(c)
	items := CartStore.RemoveItem(c.Request.Context(), sid, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Produit supprimé du panier",
		"data":    cartPayload(items, CartStore.IsOpen(sid)),
	})
}

//
// 🧹 DELETE /api/cart
//
func ClearCart(c *gin.Context) {
	sid := sessionID(c)
	items := CartStore.ClearCart(c.Request.Context(), sid)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Panier vidé",
		"data":    cartPayload(items, CartStore.IsOpen(sid)),
	})
}

//
// --- Flag UI isOpen (jamais persisté) ---
//

func ToggleCart(c *gin.Context) {
	isOpen := CartStore.ToggleCart(sessionID(c))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"isOpen": isOpen}})
}

func OpenCart(c *gin.Context) {
	CartStore.OpenCart(sessionID(c))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"isOpen": true}})
}

func CloseCart(c *gin.Context) {
	CartStore.CloseCart(sessionID(c))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"isOpen": false}})
}
