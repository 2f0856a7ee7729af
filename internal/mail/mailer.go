// Package mail sends transactional emails over SMTP. When no SMTP host is
// configured every send becomes a logged no-op, which keeps local development
// working without credentials.
package mail

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"navetteclub/internal/utils"
)

type Mailer struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	RequestID string
}

func (m Mailer) enabled() bool { return m.Host != "" }

func (m Mailer) send(msg *gomail.Message) error {
	if !m.enabled() {
		utils.LogEvent(m.RequestID, "mail", "skipped", "SMTP non configuré, email ignoré")
		return nil
	}
	d := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	return d.DialAndSend(msg)
}

// SendBookingConfirmation emails the customer their voucher after payment.
func (m Mailer) SendBookingConfirmation(toEmail, customerName, reference string, totalCents int64, voucherPDF []byte, voucherName string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.FromEmail)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Confirmation de réservation %s", reference))
	msg.SetBody("text/html", fmt.Sprintf(`
		<p>Bonjour %s,</p>
		<p>Votre réservation <strong>%s</strong> est confirmée. Le montant de
		<strong>%s €</strong> a bien été réglé.</p>
		<p>Vous trouverez votre voucher en pièce jointe. Présentez-le au chauffeur
		le jour du départ.</p>
		<p>À bientôt,<br>L'équipe NavetteClub</p>
	`, customerName, reference, utils.FormatEuro(totalCents)))

	if len(voucherPDF) > 0 {
		msg.Attach(voucherName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(voucherPDF)
			return err
		}))
	}

	if err := m.send(msg); err != nil {
		return fmt.Errorf("envoi de la confirmation %s: %w", reference, err)
	}
	utils.LogEvent(m.RequestID, "mail", "confirmation_sent", fmt.Sprintf("ref=%s to=%s", reference, toEmail))
	return nil
}

// SendMissionOrder emails the assigned provider its mission order.
func (m Mailer) SendMissionOrder(toEmail, providerName, reference string, missionPDF []byte, missionName string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.FromEmail)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Ordre de mission %s", reference))
	msg.SetBody("text/html", fmt.Sprintf(`
		<p>Bonjour %s,</p>
		<p>Une course vous a été assignée, référence <strong>%s</strong>.
		L'ordre de mission est en pièce jointe.</p>
		<p>Merci de confirmer la prise en charge.</p>
	`, providerName, reference))

	if len(missionPDF) > 0 {
		msg.Attach(missionName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(missionPDF)
			return err
		}))
	}

	if err := m.send(msg); err != nil {
		return fmt.Errorf("envoi de l'ordre de mission %s: %w", reference, err)
	}
	utils.LogEvent(m.RequestID, "mail", "mission_order_sent", fmt.Sprintf("ref=%s to=%s", reference, toEmail))
	return nil
}

// SendContactNotification forwards a storefront contact-form message.
func (m Mailer) SendContactNotification(adminEmail, fromName, fromEmail, message string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.FromEmail)
	msg.SetHeader("To", adminEmail)
	msg.SetHeader("Reply-To", fromEmail)
	msg.SetHeader("Subject", "Nouveau message de contact")
	msg.SetBody("text/html", fmt.Sprintf(`
		<p><strong>De :</strong> %s (%s)</p>
		<p>%s</p>
	`, fromName, fromEmail, message))

	if err := m.send(msg); err != nil {
		return fmt.Errorf("envoi du message de contact: %w", err)
	}
	return nil
}
