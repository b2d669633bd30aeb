package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendLeadNotification(conversationId, name, contact, wealthBracket string) error
}

type emailService struct {
	dialer       *gomail.Dialer
	senderEmail  string
	advisorEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail, advisorEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:       d,
		senderEmail:  senderEmail,
		advisorEmail: advisorEmail,
	}
}

func (s *emailService) SendLeadNotification(conversationId, name, contact, wealthBracket string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", s.advisorEmail)
	m.SetHeader("Subject", fmt.Sprintf("Nouveau prospect qualifié : %s", name))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Nouveau prospect qualifié</h2>
			<p>Le chatbot vient de qualifier un prospect :</p>
			<ul>
				<li><b>Nom :</b> %s</li>
				<li><b>Contact :</b> %s</li>
				<li><b>Patrimoine financier :</b> %s</li>
				<li><b>Conversation :</b> %s</li>
			</ul>
			<p>Pensez à le recontacter rapidement.</p>
		</div>
	`, name, contact, wealthBracket, conversationId)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send lead notification for %s: %v\n", conversationId, err)
		return err
	}

	fmt.Printf("[MAILER] Lead notification sent for conversation %s\n", conversationId)
	return nil
}
