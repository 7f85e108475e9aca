package handlers

import (
	"log"
	"net/http"

	"olyncha_back_end/internal/database"
	"olyncha_back_end/internal/pricing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// toutes origines acceptées (à restreindre en production)
		return true
	},
}

// CartWebSocket pousse un instantané du panier à chaque mutation,
// via le canal pub/sub Redis de la session.
func CartWebSocket(c *gin.Context) {
	if database.RedisClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Synchronisation indisponible sans Redis"})
		return
	}

	sid := sessionID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()

	pubsub := database.RedisClient.Subscribe(ctx, "cart:"+sid)
	defer pubsub.Close()
	ch := pubsub.Channel()

	_ = conn.WriteJSON(gin.H{
		"type":    "connected",
		"message": "Synchronisation panier activée",
	})

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload != "updated" {
				continue
			}

			items := CartStore.Items(ctx, sid)
			err := conn.WriteJSON(gin.H{
				"type":      "cart_updated",
				"items":     items,
				"itemCount": pricing.ItemCount(items),
				"subtotal":  pricing.Subtotal(items),
				"total":     pricing.Total(items),
			})
			if err != nil {
				log.Printf("🔌 WebSocket panier fermé pour %s: %v", sid, err)
				return
			}

		case <-ctx.Done():
			return
		}
	}
}
