package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/xavierca1/site-leads/internal/entity"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func NewEmailSender(host string, port int, user, password, from, teamEmail, companyName string) *EmailSender {
	return NewEmailSenderWithDialer(gomail.NewDialer(host, port, user, password), from, teamEmail, companyName)
}

func NewEmailSenderWithDialer(d Dialer, from, teamEmail, companyName string) *EmailSender {
	return &EmailSender{
		From:        from,
		TeamEmail:   teamEmail,
		CompanyName: companyName,
		dialer:      d,
	}
}

// SendInternalAlert avisa o time comercial sobre o lead novo.
func (s *EmailSender) SendInternalAlert(ctx context.Context, lead entity.Lead) error {
	if s.TeamEmail == "" {
		return fmt.Errorf("TEAM_EMAIL não configurado")
	}
	subject := fmt.Sprintf("🔔 Novo lead: %s (%s)", lead.Name, lead.Source)
	return s.send(ctx, s.TeamEmail, subject, "internal_alert.html", lead)
}

// SendCustomerConfirmation confirma o recebimento para o cliente.
func (s *EmailSender) SendCustomerConfirmation(ctx context.Context, lead entity.Lead) error {
	subject := fmt.Sprintf("Recebemos sua mensagem, %s!", lead.Name)
	return s.send(ctx, lead.Email, subject, "customer_confirmation.html", lead)
}

func (s *EmailSender) render(tmpl string, lead entity.Lead) (string, error) {
	data := LeadEmailData{
		Lead:        lead,
		ReceivedAt:  lead.CreatedAt.Format("02/01/2006 15:04"),
		CompanyName: s.CompanyName,
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, tmpl, data); err != nil {
		return "", fmt.Errorf("erro ao processar template: %w", err)
	}
	return body.String(), nil
}

func (s *EmailSender) send(ctx context.Context, to, subject, tmpl string, lead entity.Lead) error {
	body, err := s.render(tmpl, lead)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	if tmpl == "internal_alert.html" {
		m.SetHeader("Reply-To", lead.Email)
	}
	m.SetBody("text/html", body)

	// gomail não aceita contexto; ao menos não discamos se já expirou
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}
	return nil
}
