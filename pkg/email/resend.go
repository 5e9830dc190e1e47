package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/resendlabs/resend-go"
	"github.com/sefazor/eventix-backend/internal/models"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewEmailService(apiKey, from, fromName string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(apiKey),
		from:     from,
		fromName: fromName,
		logger:   logger.Named("email"),
	}
}

func (s *EmailService) SendTicketConfirmation(ctx context.Context, msg models.TicketConfirmation) error {
	s.logger.Info("sending ticket confirmation", zap.String("to", msg.To), zap.String("order_id", msg.OrderID.String()))

	templateData := map[string]interface{}{
		"FirstName": msg.FirstName,
		"EventName": msg.EventName,
		"Tickets":   msg.Tickets,
		"Date":      msg.DateStart.Format("Monday, 2 January 2006 15:04"),
		"City":      msg.City,
		"Address":   msg.Address,
		"OrderID":   msg.OrderID.String(),
		"Year":      msg.DateStart.Year(),
	}

	html, err := s.parseTemplate("ticket-confirmation.html", templateData)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{msg.To},
		Subject: fmt.Sprintf("Your tickets for %s", msg.EventName),
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send ticket confirmation", zap.String("to", msg.To), zap.Error(err))
		return fmt.Errorf("resend: %w", err)
	}

	s.logger.Info("ticket confirmation sent", zap.String("to", msg.To), zap.String("email_id", resp.Id))
	return nil
}

func (s *EmailService) parseTemplate(templateName string, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, templateName, data); err != nil {
		s.logger.Error("failed to render template", zap.String("template", templateName), zap.Error(err))
		return "", err
	}
	return body.String(), nil
}
