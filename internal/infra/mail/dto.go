package mail

import (
	"github.com/xavierca1/site-leads/internal/entity"
	"gopkg.in/gomail.v2"
)

type LeadEmailData struct {
	Lead        entity.Lead
	ReceivedAt  string
	CompanyName string
}

// Dialer é o pedaço do gomail.Dialer que o sender usa.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailSender struct {
	From        string
	TeamEmail   string
	CompanyName string
	dialer      Dialer
}
