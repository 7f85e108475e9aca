package handlers

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"olyncha_back_end/internal/models"
	"olyncha_back_end/internal/orders"
	"olyncha_back_end/internal/services"
	"olyncha_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// estimatedDeliveryDelay : créneau annoncé au client à la création
const estimatedDeliveryDelay = 45 * time.Minute

//
// 🟢 POST /api/orders
//
// Le serveur fait confiance aux totaux envoyés par le client et ne
// rejette pas les champs manquants : tout corps JSON parsable donne
// une commande. Seul un corps illisible produit une erreur.
func CreateOrder(c *gin.Context) {
	var body struct {
		UserID        string              `json:"userId"`
		Items         []models.LineItem   `json:"items"`
		Subtotal      float64             `json:"subtotal"`
		Tax           float64             `json:"tax"`
		DeliveryFee   float64             `json:"deliveryFee"`
		Total         float64             `json:"total"`
		CustomerInfo  models.CustomerInfo `json:"customerInfo"`
		PaymentMethod string              `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create order"})
		return
	}

	if body.Items == nil {
		body.Items = []models.LineItem{}
	}

	now := time.Now().UTC()
	order := models.Order{
		ID:                orders.NewOrderID(),
		UserID:            body.UserID,
		Items:             body.Items,
		Subtotal:          body.Subtotal,
		Tax:               body.Tax,
		DeliveryFee:       body.DeliveryFee,
		Total:             body.Total,
		Status:            models.OrderStatusPlaced,
		CustomerInfo:      body.CustomerInfo,
		PaymentMethod:     body.PaymentMethod,
		CreatedAt:         now.Format(time.RFC3339),
		UpdatedAt:         now.Format(time.RFC3339),
		EstimatedDelivery: now.Add(estimatedDeliveryDelay).Format(time.RFC3339),
	}

	order = OrderRepo.Create(order)
	log.Printf("🧾 Commande %s créée ($%.2f, %d items)", order.ID, order.Total, len(order.Items))

	response := gin.H{
		"success": true,
		"data":    order,
		"message": "Order placed successfully",
	}

	// paiement par carte → PaymentIntent Stripe (best-effort)
	if strings.EqualFold(order.PaymentMethod, "card") {
		if secret := services.CreatePaymentIntent(order); secret != "" {
			response["clientSecret"] = secret
		}
	}

	// confirmation e-mail asynchrone, jamais bloquante
	if order.CustomerInfo.Email != "" {
		go sendConfirmation(order)
	}

	c.JSON(http.StatusOK, response)
}

func sendConfirmation(order models.Order) {
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}

	qr, err := utils.OrderTrackingQR(frontend, order.ID)
	if err != nil {
		log.Printf("⚠️ Erreur génération QR pour %s: %v", order.ID, err)
	}

	var receipt []byte
	if os.Getenv("RECEIPT_PDF_ENABLED") == "true" {
		receipt, err = utils.RenderReceiptPDF(frontend+"/order-confirmed", order.ID)
		if err != nil {
			log.Printf("⚠️ Erreur génération reçu PDF pour %s: %v", order.ID, err)
		}
	}

	html := utils.OrderConfirmationHTML(order, qr)
	if err := utils.SendOrderConfirmation(order.CustomerInfo.Email, "Your Olyncha order "+order.ID, html, receipt); err != nil {
		log.Printf("⚠️ E-mail de confirmation non envoyé pour %s: %v", order.ID, err)
	}
}

//
// 🟢 GET /api/orders — vue admin, filtre userId ou lookup orderId
//
func GetOrders(c *gin.Context) {
	if orderID := c.Query("orderId"); orderID != "" {
		order, ok := OrderRepo.GetByID(orderID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
		return
	}

	if userID := c.Query("userId"); userID != "" {
		userOrders := OrderRepo.GetByUser(userID)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": userOrders, "total": len(userOrders)})
		return
	}

	all := OrderRepo.List()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": all, "total": len(all)})
}

//
// 🟢 GET /api/orders/:id
//
func GetOrderByID(c *gin.Context) {
	order, ok := OrderRepo.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

//
// 🔁 PATCH /api/orders/:id — statut accepté tel quel, updatedAt bumpé
//
func UpdateOrderStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Données invalides"})
		return
	}

	order, ok := OrderRepo.UpdateStatus(c.Param("id"), body.Status)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
		"message": "Order updated successfully",
	})
}
