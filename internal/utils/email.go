package utils

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strconv"

	"olyncha_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// SendOrderConfirmation envoie l'e-mail de confirmation avec le reçu
// PDF en pièce jointe. Best-effort : une erreur SMTP ne bloque jamais
// la commande, elle est seulement loggée par l'appelant.
func SendOrderConfirmation(to, subject, htmlBody string, pdfReceipt []byte) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return fmt.Errorf("SMTP_HOST non configuré")
	}

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@olyncha.com"
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if pdfReceipt != nil {
		msg.AttachReader("olyncha_receipt.pdf", bytes.NewReader(pdfReceipt))
	}

	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de la confirmation de commande à", to)
	return client.DialAndSend(msg)
}

// OrderConfirmationHTML génère le corps HTML de la confirmation.
// qrDataURI (optionnel) pointe vers la page de suivi de commande.
func OrderConfirmationHTML(order models.Order, qrDataURI string) string {
	itemsHTML := ""
	for _, item := range order.Items {
		desc := item.Name
		if item.Size != "" {
			desc += " (" + item.Size + ")"
		}
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding:8px;border:1px solid #ddd;">%s</td>
				<td style="padding:8px;border:1px solid #ddd;">%d</td>
				<td style="padding:8px;border:1px solid #ddd;">$%.2f</td>
				<td style="padding:8px;border:1px solid #ddd;">$%.2f</td>
			</tr>`, desc, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	qrHTML := ""
	if qrDataURI != "" {
		qrHTML = fmt.Sprintf(`<p style="text-align:center;"><img src="%s" alt="Track your order" width="160" height="160"/></p>
		<p style="text-align:center;color:#888;">Scan to track your order</p>`, qrDataURI)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Order Confirmation</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f4f7f2; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 24px; border-radius: 10px;">
		<h2 style="color: #2f5233;">Thank you for your order!</h2>
		<p>Your order <strong>%s</strong> has been placed.</p>

		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #eaf2e6;">
					<th style="padding:8px;text-align:left;border:1px solid #ddd;">Item</th>
					<th style="padding:8px;text-align:left;border:1px solid #ddd;">Qty</th>
					<th style="padding:8px;text-align:left;border:1px solid #ddd;">Unit</th>
					<th style="padding:8px;text-align:left;border:1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>

		<p style="text-align:right;">Subtotal: $%.2f<br/>
		Tax: $%.2f<br/>
		Delivery: $%.2f<br/>
		<strong>Total: $%.2f</strong></p>

		<p>Estimated delivery: %s</p>
		%s
		<p style="color:#888;font-size:12px;">Olyncha — premium matcha, Rochester NH</p>
	</div>
</body>
</html>`,
		order.ID, itemsHTML,
		order.Subtotal, order.Tax, order.DeliveryFee, order.Total,
		order.EstimatedDelivery, qrHTML)
}
