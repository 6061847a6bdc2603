package mailer

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

type SubscriptionMail struct {
	ToEmail      string
	VendorName   string
	PlanName     string
	BookingLimit int
	EndDate      string
}

type IEmailService interface {
	SendSubscriptionActivated(mail SubscriptionMail) error
	SendSubscriptionRejected(mail SubscriptionMail) error
	SendSubscriptionExpired(mail SubscriptionMail) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

// NewEmailService sends from the SMTP account address, displayed as senderName.
func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
	}
}

func (s *emailService) SendSubscriptionActivated(mail SubscriptionMail) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s, your subscription is active</h2>
			<p>Your payment for the <strong>%s</strong> plan has been verified.</p>
			<p>You can accept up to <strong>%d</strong> bookings until %s.</p>
		</div>
	`, mail.VendorName, mail.PlanName, mail.BookingLimit, mail.EndDate)
	return s.send(mail.ToEmail, "Subscription Activated", body)
}

func (s *emailService) SendSubscriptionRejected(mail SubscriptionMail) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s, we could not verify your payment</h2>
			<p>The payment proof submitted for the <strong>%s</strong> plan was rejected.</p>
			<p>Please subscribe again with a valid payment screenshot.</p>
		</div>
	`, mail.VendorName, mail.PlanName)
	return s.send(mail.ToEmail, "Subscription Payment Rejected", body)
}

func (s *emailService) SendSubscriptionExpired(mail SubscriptionMail) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s, your subscription has expired</h2>
			<p>Your <strong>%s</strong> plan ended on %s. Renew to keep accepting bookings.</p>
		</div>
	`, mail.VendorName, mail.PlanName, mail.EndDate)
	return s.send(mail.ToEmail, "Subscription Expired", body)
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("[MAILER ERROR] Failed to send %q to %s: %v", subject, to, err)
		return err
	}

	log.Printf("[MAILER] %q sent to %s", subject, to)
	return nil
}
