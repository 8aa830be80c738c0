package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/papela-rentals/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/papela-rentals/internal/errors"
	"github.com/aaravmahajanofficial/papela-rentals/internal/metrics"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	repository "github.com/aaravmahajanofficial/papela-rentals/internal/repositories"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils"
	"github.com/aaravmahajanofficial/papela-rentals/pkg/sendgrid"
	"github.com/google/uuid"
)

type ContactService interface {
	Submit(ctx context.Context, form *models.ContactInquiry) (*models.ContactResponse, error)
}

type contactService struct {
	repo         repository.InquiryRepository
	emailService sendgrid.EmailService
	inbox        string
	now          func() time.Time
}

func NewContactService(repo repository.InquiryRepository, emailService sendgrid.EmailService, inbox string) ContactService {
	return &contactService{repo: repo, emailService: emailService, inbox: inbox, now: time.Now}
}

// Submit records the inquiry and forwards it to the business inbox. The
// visitor's address goes into Reply-To so staff can answer directly.
func (s *contactService) Submit(ctx context.Context, form *models.ContactInquiry) (*models.ContactResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	clean := sanitizeInquiry(form)

	if clean.Name == "" || clean.Message == "" {
		return nil, appErrors.ValidationError("Name and message are required")
	}

	inquiry := &models.Inquiry{
		ID:        uuid.New(),
		Form:      clean,
		Status:    models.InquiryStatusPending,
		CreatedAt: s.now(),
	}

	if err := s.repo.CreateInquiry(ctx, inquiry); err != nil {
		metrics.InquiriesSubmitted.WithLabelValues("error").Inc()
		return nil, appErrors.DatabaseError("Failed to record inquiry").WithError(err)
	}

	req := &models.EmailNotificationRequest{
		To:       s.inbox,
		ReplyTo:  clean.Email,
		Subject:  fmt.Sprintf("New event inquiry from %s", clean.Name),
		Content:  inquiryBody(clean),
		Metadata: map[string]string{"inquiry_id": inquiry.ID.String()},
	}

	if err := s.emailService.Send(ctx, req); err != nil {

		_ = s.repo.UpdateInquiryStatus(ctx, inquiry.ID, models.InquiryStatusFailed, err.Error())
		metrics.InquiriesSubmitted.WithLabelValues(string(models.InquiryStatusFailed)).Inc()

		logger.Error("Failed to forward inquiry", slog.String("inquiry_id", inquiry.ID.String()), slog.String("error", err.Error()))

		return nil, appErrors.ThirdPartyError("Failed to send your message, please try again").WithError(err)
	}

	if err := s.repo.UpdateInquiryStatus(ctx, inquiry.ID, models.InquiryStatusSent, ""); err != nil {
		logger.Warn("Inquiry sent but status update failed", slog.String("inquiry_id", inquiry.ID.String()), slog.String("error", err.Error()))
	}

	metrics.InquiriesSubmitted.WithLabelValues(string(models.InquiryStatusSent)).Inc()
	logger.Info("Inquiry forwarded", slog.String("inquiry_id", inquiry.ID.String()))

	return &models.ContactResponse{
		InquiryID: inquiry.ID,
		Message:   "Thank you for your message! We'll get back to you within 24 hours.",
	}, nil
}

func sanitizeInquiry(form *models.ContactInquiry) models.ContactInquiry {
	return models.ContactInquiry{
		Name:       utils.SanitizeText(form.Name),
		Email:      strings.TrimSpace(form.Email),
		Phone:      utils.SanitizeText(form.Phone),
		EventType:  utils.SanitizeText(form.EventType),
		EventDate:  strings.TrimSpace(form.EventDate),
		GuestCount: utils.SanitizeText(form.GuestCount),
		Budget:     utils.SanitizeText(form.Budget),
		Message:    utils.SanitizeText(form.Message),
	}
}

func inquiryBody(f models.ContactInquiry) string {

	var b strings.Builder

	fmt.Fprintf(&b, "Name: %s\n", f.Name)
	fmt.Fprintf(&b, "Email: %s\n", f.Email)

	optional := []struct{ label, value string }{
		{"Phone", f.Phone},
		{"Event type", f.EventType},
		{"Event date", f.EventDate},
		{"Guest count", f.GuestCount},
		{"Budget", f.Budget},
	}

	for _, o := range optional {
		if o.value != "" {
			fmt.Fprintf(&b, "%s: %s\n", o.label, o.value)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", f.Message)

	return b.String()
}
