package mailer

import (
	"bytes"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sananasgarov/NummixAzBackend/config"
)

//go:embed templates/*.html
var emailTemplates embed.FS

var templates = template.Must(template.ParseFS(emailTemplates, "templates/*.html"))

// Sender is the transactional-email surface the handlers depend on.
type Sender interface {
	SendContactNotification(msg ContactMessage) error
	SendContactAutoReply(to, fullName string) error
	SendResetCodeEmail(to, name, code string) error
	SendResetConfirmation(to, name string) error
}

// ContactMessage carries a submitted contact form into the admin
// notification template.
type ContactMessage struct {
	FullName    string
	Email       string
	CompanyName string
	Message     string
}

type Client struct {
	cfg config.EmailConfig
}

func NewClient(cfg config.EmailConfig) *Client {
	return &Client{cfg: cfg}
}

func (c *Client) SendContactNotification(msg ContactMessage) error {
	subject := fmt.Sprintf("Nummix - New Inquiry: %s", msg.FullName)
	return c.send(c.cfg.AdminEmail, subject, "contact_notification.html", msg)
}

func (c *Client) SendContactAutoReply(to, fullName string) error {
	data := struct{ FullName string }{FullName: fullName}
	return c.send(to, "Your Inquiry Has Been Received - Nummix", "contact_autoreply.html", data)
}

func (c *Client) SendResetCodeEmail(to, name, code string) error {
	data := struct {
		Name string
		Code string
	}{Name: name, Code: code}
	return c.send(to, "Password Reset Code - Admin Panel", "reset_code.html", data)
}

func (c *Client) SendResetConfirmation(to, name string) error {
	data := struct{ Name string }{Name: name}
	return c.send(to, "Your Password Has Been Changed", "reset_confirmation.html", data)
}

func (c *Client) send(toEmail, subject, templateName string, data interface{}) error {
	if c.cfg.Host == "" {
		return fmt.Errorf("smtp host is not configured")
	}
	if toEmail == "" {
		return fmt.Errorf("recipient address is empty")
	}

	from := c.cfg.FromAddress
	if from == "" {
		from = c.cfg.Username
	}
	if from == "" {
		return fmt.Errorf("smtp from address is not configured")
	}

	body := bytes.Buffer{}
	if err := templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("render %s: %w", templateName, err)
	}

	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)
	auth := smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
	msg := buildHTMLMessage(from, toEmail, subject, body.String())

	if c.cfg.Username == "" && c.cfg.Password == "" {
		return smtp.SendMail(addr, nil, from, []string{toEmail}, []byte(msg))
	}

	if c.cfg.Port == 465 {
		return c.sendSMTPTLS(addr, auth, from, toEmail, msg)
	}

	return smtp.SendMail(addr, auth, from, []string{toEmail}, []byte(msg))
}

func (c *Client) sendSMTPTLS(addr string, auth smtp.Auth, from, toEmail, msg string) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: c.cfg.Host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, c.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(toEmail); err != nil {
		return err
	}

	wc, err := client.Data()
	if err != nil {
		return err
	}
	_, err = wc.Write([]byte(msg))
	if err != nil {
		return err
	}
	if err := wc.Close(); err != nil {
		return err
	}

	return client.Quit()
}

func buildHTMLMessage(from, to, subject, htmlBody string) string {
	return fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"utf-8\"\r\n\r\n%s", from, to, subject, htmlBody)
}
