package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/skip2/go-qrcode"
)

// OrderTrackingQR génère un QR code (base64, prêt pour <img src>)
// pointant vers la page de suivi de la commande.
func OrderTrackingQR(frontendURL, orderID string) (string, error) {
	tracking := fmt.Sprintf("%s/order-status?orderId=%s", frontendURL, url.QueryEscape(orderID))

	png, err := qrcode.Encode(tracking, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// RenderReceiptPDF charge la page de confirmation du frontend dans un
// Chrome headless et l'imprime en PDF (pièce jointe de l'e-mail).
// frontendURL : ex. http://localhost:3000/order-confirmed
func RenderReceiptPDF(frontendURL, orderID string) ([]byte, error) {
	q := url.Values{}
	q.Set("orderId", orderID)
	fullURL := fmt.Sprintf("%s?%s", frontendURL, q.Encode())

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var pdfBuf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate(fullURL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
