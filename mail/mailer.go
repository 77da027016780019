package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"portfolio/config"

	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	welcomeSubject      = "Thanks for reaching out"
	notificationSubject = "New portfolio contact message"
)

// Mailer renders the transactional templates and sends them through the
// configured SMTP relay.
type Mailer struct {
	dialer    *gomail.Dialer
	sender    gomail.Sender
	templates *template.Template
	from      string
	operator  string
}

// New builds a Mailer from the smtp section of the config.
func New(cfg *config.Config) (*Mailer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse mail templates: %w", err)
	}
	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password)
	dialer.SSL = cfg.SMTP.SSL
	return &Mailer{
		dialer:    dialer,
		templates: tmpl,
		from:      cfg.SMTP.From,
		operator:  cfg.SMTP.Operator,
	}, nil
}

// NewWithSender builds a Mailer that hands messages to the given sender
// instead of dialing SMTP. Lets tests substitute a fake transport.
func NewWithSender(cfg *config.Config, sender gomail.Sender) (*Mailer, error) {
	m, err := New(cfg)
	if err != nil {
		return nil, err
	}
	m.sender = sender
	return m, nil
}

// SendWelcome mails the welcome template to the given recipient.
func (m *Mailer) SendWelcome(to, name string) error {
	body, err := m.render("welcome.html", map[string]any{"Name": name})
	if err != nil {
		return err
	}
	return m.send(to, welcomeSubject, body)
}

// SendNotification mails the contact message to the operator address.
func (m *Mailer) SendNotification(name, message string) error {
	body, err := m.render("notification.html", map[string]any{"Name": name, "Message": message})
	if err != nil {
		return err
	}
	return m.send(m.operator, notificationSubject, body)
}

func (m *Mailer) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := m.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	if m.sender != nil {
		return gomail.Send(m.sender, msg)
	}
	return m.dialer.DialAndSend(msg)
}
