package notification

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/uniteam/uniteam-backend/config"
)

// Channel is anything that can deliver a message out-of-band.
type Channel interface {
	Send(to []string, subject string, body string) error
}

// EmailSender implements Channel over SMTP
type EmailSender struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
	FromAddr string
}

func NewEmailSender(cfg *config.Config) *EmailSender {
	return &EmailSender{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		FromName: cfg.SMTPFromName,
		FromAddr: cfg.SMTPFromEmail,
	}
}

// Send wraps the body in the UniTeam HTML shell and ships it over SMTP
func (e *EmailSender) Send(to []string, subject string, body string) error {
	htmlBody := fmt.Sprintf(
		"<html><body style=\"font-family: Arial, sans-serif;\">"+
			"<h2 style=\"color:#2c3e50;\">UniTeam</h2>"+
			"<div>%s</div>"+
			"<p style=\"color:#7f8c8d; font-size:12px;\">Cet email a été envoyé automatiquement, merci de ne pas y répondre.</p>"+
			"</body></html>",
		strings.ReplaceAll(body, "\n", "<br>"),
	)

	from := fmt.Sprintf("%s <%s>", e.FromName, e.FromAddr)
	toHeader := strings.Join(to, ", ")
	headers := map[string]string{
		"From":         from,
		"To":           toHeader,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"UTF-8\"",
	}

	var msgBuilder strings.Builder
	for k, v := range headers {
		msgBuilder.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msgBuilder.WriteString("\r\n" + htmlBody)
	message := []byte(msgBuilder.String())

	addr := fmt.Sprintf("%s:%s", e.Host, e.Port)
	fmt.Println("📤 Sending email to:", to, "via", addr)

	if err := e.sendMailWithTLS(addr, to, message); err != nil {
		fmt.Println("❌ Email send failed:", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	fmt.Println("✅ Email sent successfully to:", to)
	return nil
}

// SendWelcome emails the credentials of a freshly created account.
func (e *EmailSender) SendWelcome(email, firstName, tempPassword string) error {
	subject := "Bienvenue sur UniTeam !"
	body := fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Votre compte UniTeam vient d'être créé.\n\n"+
			"Identifiant : %s\n"+
			"Mot de passe temporaire : %s\n\n"+
			"Pensez à changer votre mot de passe lors de votre première connexion.\n\n"+
			"À bientôt sur UniTeam !",
		firstName, email, tempPassword,
	)
	return e.Send([]string{email}, subject, body)
}

// sendMailWithTLS speaks STARTTLS by hand, some providers reject smtp.SendMail defaults
func (e *EmailSender) sendMailWithTLS(addr string, to []string, message []byte) error {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
		ServerName:         e.Host,
	}

	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	defer client.Close()

	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", e.Username, e.Password, e.Host)
	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	if err = client.Mail(e.FromAddr); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	for _, recipient := range to {
		if err = client.Rcpt(recipient); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", recipient, err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	if _, err = writer.Write(message); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}

	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	return client.Quit()
}
