// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendSubmissionReceived(toEmail, title string, commission float64, currency string) error
	SendSubmissionApproved(toEmail, title string, listingId string) error
	SendSubmissionRejected(toEmail, title, reason string) error
	SendPaymentReceived(toEmail, title string, amount float64, currency string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] %q sent to %s\n", subject, toEmail)
	return nil
}

func (s *emailService) SendSubmissionReceived(toEmail, title string, commission float64, currency string) error {
	payLine := "<p>Your listing is free of charge and is already live.</p>"
	if commission > 0 {
		payLine = fmt.Sprintf(`<p>A commission of <strong>%.2f %s</strong> is due before your listing goes live. You can pay from your dashboard.</p>`, commission, currency)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>We received your submission</h2>
			<p>Your property <strong>%s</strong> has been submitted for review.</p>
			%s
		</div>
	`, title, payLine)

	return s.send(toEmail, "Submission Received", body)
}

func (s *emailService) SendSubmissionApproved(toEmail, title string, listingId string) error {
	listingLink := fmt.Sprintf("%s/properties/%s", s.frontendURL, listingId)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your listing is live</h2>
			<p>Your property <strong>%s</strong> has been approved and published.</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">View Listing</a>
			<p>Or copy this link:</p>
			<p>%s</p>
		</div>
	`, title, listingLink, listingLink)

	return s.send(toEmail, "Your Listing Is Live", body)
}

func (s *emailService) SendSubmissionRejected(toEmail, title, reason string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Submission not approved</h2>
			<p>Your property <strong>%s</strong> was not approved for publication.</p>
			<p><strong>Reason:</strong> %s</p>
			<p>If you have already paid the commission, our team will contact you about a refund.</p>
		</div>
	`, title, reason)

	return s.send(toEmail, "Submission Not Approved", body)
}

func (s *emailService) SendPaymentReceived(toEmail, title string, amount float64, currency string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Payment received</h2>
			<p>We received your commission payment of <strong>%.2f %s</strong> for <strong>%s</strong>.</p>
			<p>Your submission is now awaiting final review.</p>
		</div>
	`, amount, currency, title)

	return s.send(toEmail, "Payment Received", body)
}
