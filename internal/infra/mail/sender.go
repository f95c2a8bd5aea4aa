package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/qpeachy/deactivate-user-airtable/internal/usecase"
)

const summaryTemplate = `Airtable deactivation run {{.RunID}} finished.

Source file:              {{.SourceFile}}
Already done (ledger):    {{.AlreadyDone}}
Skipped this run:         {{.Skipped}}
Deactivated this run:     {{len .Succeeded}}
Failed this run:          {{len .Failed}}
{{if .Failed}}
Failed users:
{{range .Failed}}  - {{.ID}}: {{.Reason}}
{{end}}{{end}}`

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

// SendRunSummary manda o resumo da execução para o operador. Texto puro
// mesmo, isso aqui é email de auditoria, não marketing.
func (s *EmailSender) SendRunSummary(report *usecase.RunReport) error {
	body, err := buildSummaryBody(report)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf(
		"Airtable deactivation: %d deactivated, %d failed", len(report.Succeeded), len(report.Failed)))
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

func buildSummaryBody(report *usecase.RunReport) (string, error) {
	t, err := template.New("summary").Parse(summaryTemplate)
	if err != nil {
		return "", fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, report); err != nil {
		return "", fmt.Errorf("erro ao processar template: %w", err)
	}
	return body.String(), nil
}
