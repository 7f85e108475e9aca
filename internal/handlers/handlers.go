// Package handlers expose les endpoints REST du storefront.
package handlers

import (
	"olyncha_back_end/internal/auth"
	"olyncha_back_end/internal/cart"
	"olyncha_back_end/internal/orders"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Stores injectés au démarrage (Init) ; les tests les remplacent par
// des implémentations mémoire.
var (
	CartStore *cart.Store
	AuthStore *auth.Store
	OrderRepo orders.Repository
)

func Init(cartStore *cart.Store, authStore *auth.Store, orderRepo orders.Repository) {
	CartStore = cartStore
	AuthStore = authStore
	OrderRepo = orderRepo
}

const sessionCookie = "olyn-cha-session"

// sessionID identifie le panier/la session : user_id du JWT si
// connecté, sinon header X-Session-Id (clients sans cookies, dont le
// websocket), sinon cookie de session créé au premier appel — c'est
// l'équivalent serveur de la clé localStorage du navigateur.
func sessionID(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return userID
	}
	if sid := c.GetHeader("X-Session-Id"); sid != "" {
		return sid
	}
	if sid, err := c.Cookie(sessionCookie); err == nil && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.SetCookie(sessionCookie, sid, 30*24*3600, "/", "", false, true)
	return sid
}
