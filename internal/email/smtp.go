package email

import (
	"context"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements the Sender interface using a direct SMTP connection
// via go-mail.
type SMTPSender struct {
	host       string
	port       int
	username   string
	password   string
	fromName   string
	fromEmail  string
	studioName string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
func NewSMTPSender(host string, port int, username, password, fromEmail, fromName, studioName string) *SMTPSender {
	return &SMTPSender{
		host:       host,
		port:       port,
		username:   username,
		password:   password,
		fromName:   fromName,
		fromEmail:  fromEmail,
		studioName: studioName,
	}
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (s *SMTPSender) SendOrderConfirmationEmail(ctx context.Context, toEmail string, data OrderEmailData) error {
	subject := fmt.Sprintf(subjectOrderConfirmationFmt, s.studioName)
	content, err := renderEmailTemplate("order_confirmation.html", orderConfirmationEmailData{
		baseEmailData: baseEmailData{
			Title:   "Order Confirmed",
			Heading: "Thanks for your order!",
		},
		StudioName:    s.studioName,
		Name:          data.Name,
		ServiceLabels: data.ServiceLabels,
		Budget:        data.Budget,
		Details:       data.Details,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subject, content)
}

func (s *SMTPSender) SendOwnerOrderAlertEmail(ctx context.Context, toEmail string, data OrderEmailData) error {
	subject := fmt.Sprintf(subjectOwnerOrderAlertFmt, data.Name, s.studioName)
	content, err := renderEmailTemplate("owner_alert.html", ownerAlertEmailData{
		baseEmailData: baseEmailData{
			Title:   "New Order",
			Heading: "New order received",
		},
		OrderID:       data.OrderID,
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		ServiceLabels: data.ServiceLabels,
		Budget:        data.Budget,
		Details:       data.Details,
		SubmittedAt:   data.SubmittedAt,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subject, content)
}
