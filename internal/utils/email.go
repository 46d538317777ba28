package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"ecothread_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// SendEmail envoie un e-mail HTML via le SMTP configuré.
// Les envois sont best-effort : l'appelant décide si un échec est bloquant.
func SendEmail(to, subject, htmlBody string) error {
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
		from = "noreply@ecothread.shop"
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

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

// SendOrderConfirmationEmail envoie la confirmation de commande avec le QR
// de suivi embarqué
func SendOrderConfirmationEmail(order models.Order) error {
	qr, err := GenerateTrackingQR(order.TrackingNumber)
	if err != nil {
		// sans QR on envoie quand même la confirmation
		log.Printf("⚠️ QR de suivi indisponible: %v", err)
		qr = ""
	}
	html := GenerateOrderConfirmationHTML(order, qr)
	return SendEmail(order.ShippingAddress.Email, "✅ Votre commande EcoThread est confirmée", html)
}

// SendOrderStatusEmail notifie le client d'un changement de statut
func SendOrderStatusEmail(order models.Order, newStatus string) error {
	subject := statusEmailSubject(newStatus)
	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<body style="font-family: Arial, sans-serif; background-color: #faf9f6; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #1c1917;">Mise à jour de votre commande</h2>
		<p>Bonjour %s,</p>
		<p>Votre commande <strong>#%s</strong> est maintenant : <strong>%s</strong>.</p>
		<p>Numéro de suivi : <strong style="color: #16a34a;">%s</strong></p>
		<p style="color: #78716c; font-size: 12px;">EcoThread — Reinventing the thrift experience.</p>
	</div>
</body>
</html>`, order.ShippingAddress.FullName, shortID(order.ID), newStatus, order.TrackingNumber)

	if err := SendEmail(order.ShippingAddress.Email, subject, html); err != nil {
		log.Printf("❌ Erreur envoi email statut: %v", err)
		return err
	}
	log.Printf("📧 Email de statut envoyé: %s → %s", newStatus, order.ShippingAddress.Email)
	return nil
}

func statusEmailSubject(status string) string {
	switch status {
	case models.StatusProcessing:
		return "⚙️ Votre commande est en préparation - EcoThread"
	case models.StatusShipped:
		return "📦 Votre commande a été expédiée - EcoThread"
	case models.StatusDelivered:
		return "🎉 Votre commande a été livrée - EcoThread"
	default:
		return "ℹ️ Mise à jour de votre commande - EcoThread"
	}
}

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande
func GenerateOrderConfirmationHTML(order models.Order, qrDataURI string) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 10px; border: 1px solid #ddd;">$%.2f</td>
			</tr>`, item.Name, item.Size, item.Quantity, item.Price*float64(item.Quantity))
	}

	qrHTML := ""
	if qrDataURI != "" {
		qrHTML = fmt.Sprintf(`<p style="text-align: center;"><img src="%s" alt="QR suivi" width="160" height="160"/></p>`, qrDataURI)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Confirmation de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #faf9f6; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #1c1917;">Confirmation de votre commande</h2>
		<p>Bonjour %s,</p>
		<p>Votre commande <strong>#%s</strong> a été confirmée avec succès.</p>

		<h3>Détails de la commande</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Pièce</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Taille</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Quantité</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 10px; font-weight: bold;">$%.2f</td>
				</tr>
			</tfoot>
		</table>

		<p>Numéro de suivi : <strong style="color: #16a34a;">%s</strong></p>
		%s
		<p style="color: #78716c; font-size: 12px;">EcoThread — fashion should be circular and personal.</p>
	</div>
</body>
</html>`, order.ShippingAddress.FullName, shortID(order.ID), itemsHTML, order.Total, order.TrackingNumber, qrHTML)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
