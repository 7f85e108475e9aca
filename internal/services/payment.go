package services

import (
	"log"

	"olyncha_back_end/internal/models"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

// CreatePaymentIntent crée un PaymentIntent Stripe pour le total de la
// commande (tel qu'envoyé par le client — pas de recalcul serveur) et
// retourne son client_secret. Best-effort : sans clé Stripe ou en cas
// d'erreur, la commande est créée quand même et on retourne "".
func CreatePaymentIntent(order models.Order) string {
	if stripe.Key == "" || order.Total <= 0 {
		return ""
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(order.Total * 100)),
		Currency: stripe.String("usd"),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			"order_id": order.ID,
			"user_id":  order.UserID,
			"email":    order.CustomerInfo.Email,
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		log.Printf("❌ Erreur Stripe pour %s: %v", order.ID, err)
		return ""
	}

	log.Printf("💳 PaymentIntent créé: %s ($%.2f) pour %s", intent.ID, order.Total, order.ID)
	return intent.ClientSecret
}
