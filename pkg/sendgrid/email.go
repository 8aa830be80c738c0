package sendgrid

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailService interface {
	Send(ctx context.Context, req *models.EmailNotificationRequest) error
}

type SendGridEmailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) *SendGridEmailService {
	return &SendGridEmailService{client: sendgrid.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

// Send implements EmailService.
func (e *SendGridEmailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {

	from := mail.NewEmail(e.fromName, e.fromEmail)
	to := mail.NewEmail("", req.To)

	message := mail.NewV3Mail()
	message.SetFrom(from)

	if req.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", req.ReplyTo))
	}

	personalization := mail.NewPersonalization()
	personalization.AddTos(to)

	for _, cc := range req.CC {
		personalization.AddCCs(mail.NewEmail("", cc))
	}

	for _, bcc := range req.BCC {
		personalization.AddBCCs(mail.NewEmail("", bcc))
	}

	personalization.Subject = req.Subject
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", req.Content))

	if req.HTMLContent != "" {
		message.AddContent(mail.NewContent("text/html", req.HTMLContent))
	}

	for k, v := range req.Metadata {
		message.SetCustomArg(k, v)
	}

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

// GetSendGridClient exposes the underlying client so tests can point it at a fake server.
func (e *SendGridEmailService) GetSendGridClient() *sendgrid.Client {
	return e.client
}

type logEmailService struct {
	logger *slog.Logger
}

// NewLogEmailService returns a sender that only logs. Used when no API key is configured.
func NewLogEmailService(logger *slog.Logger) EmailService {
	if logger == nil {
		logger = slog.Default()
	}

	return &logEmailService{logger: logger}
}

func (l *logEmailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.logger.InfoContext(ctx, "Email delivery disabled, logging message instead",
		slog.String("to", req.To),
		slog.String("reply_to", req.ReplyTo),
		slog.String("subject", req.Subject),
		slog.Int("content_length", len(req.Content)),
	)

	return nil
}
