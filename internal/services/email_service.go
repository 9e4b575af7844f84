package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// EmailService delivers quote and invoice emails through Resend.
type EmailService struct {
	client    *resend.Client
	logger    *zap.Logger
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:    resend.NewClient(apiKey),
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// DocumentEmailData feeds the document email templates.
type DocumentEmailData struct {
	RecipientName  string
	DocumentNumber string
	DocumentKind   string
	Total          string
	Currency       string
	ExpiryDate     string
	DueDate        string
	SenderName     string
}

var documentEmailTemplate = template.Must(template.New("document").Parse(`
<p>Dear {{.RecipientName}},</p>
<p>Please find your {{.DocumentKind}} <strong>{{.DocumentNumber}}</strong> for a total of {{.Total}} {{.Currency}}.</p>
{{if .ExpiryDate}}<p>This offer is valid until {{.ExpiryDate}}.</p>{{end}}
{{if .DueDate}}<p>Payment is due by {{.DueDate}}.</p>{{end}}
<p>Kind regards,<br>{{.SenderName}}</p>
`))

// SendDocumentEmail renders the document template and sends it to the given
// address. It returns the provider message id.
func (s *EmailService) SendDocumentEmail(ctx context.Context, toEmail string, subject string, data DocumentEmailData) (string, error) {
	var body bytes.Buffer
	if err := documentEmailTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    body.String(),
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.logger.Error("Failed to send document email",
			zap.String("to", toEmail),
			zap.String("subject", subject),
			zap.Error(err))
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("Document email sent",
		zap.String("to", toEmail),
		zap.String("emailId", sent.Id))
	return sent.Id, nil
}
