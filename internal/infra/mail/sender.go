package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

type cardIssuedData struct {
	Name       string
	PlanName   string
	CardNumber string
}

var cardIssuedTemplate = template.Must(template.New("card_issued").Parse(`
<p>Olá, {{.Name}}!</p>
<p>Seu pagamento foi confirmado e o seu <strong>{{.PlanName}}</strong> já está ativo.</p>
<p>Número do seu cartão digital: <strong>{{.CardNumber}}</strong></p>
<p>Apresente o QR Code do cartão na rede de parceiros para usar seus descontos.</p>
`))

// SendCardIssued avisa o titular que o cartão digital foi emitido.
func (s *EmailSender) SendCardIssued(to, name, planName, cardNumber string) error {
	var body bytes.Buffer
	if err := cardIssuedTemplate.Execute(&body, cardIssuedData{
		Name:       name,
		PlanName:   planName,
		CardNumber: cardNumber,
	}); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Bem-vindo ao Cartão + Vidah, %s! Seu cartão chegou 🎉", name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
