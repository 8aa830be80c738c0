package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactInquiry struct {
	Name       string `json:"name" validate:"required,max=120"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
	EventType  string `json:"event_type" validate:"omitempty,max=50"`
	EventDate  string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	GuestCount string `json:"guest_count" validate:"omitempty,max=20"`
	Budget     string `json:"budget" validate:"omitempty,max=50"`
	Message    string `json:"message" validate:"required,max=5000"`
}

type EmailNotificationRequest struct {
	Subject     string            `json:"subject" validate:"required"`
	Content     string            `json:"content" validate:"required"`
	HTMLContent string            `json:"html_content,omitempty"`
	To          string            `json:"to" validate:"required,email"`
	ReplyTo     string            `json:"reply_to,omitempty" validate:"omitempty,email"`
	CC          []string          `json:"cc,omitempty" validate:"omitempty,dive,email"`
	BCC         []string          `json:"bcc,omitempty" validate:"omitempty,dive,email"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type ContactResponse struct {
	InquiryID uuid.UUID `json:"inquiry_id"`
	Message   string    `json:"message"`
}

type InquiryStatus string

const (
	InquiryStatusPending InquiryStatus = "pending"
	InquiryStatusSent    InquiryStatus = "sent"
	InquiryStatusFailed  InquiryStatus = "failed"
)

// Inquiry is a contact form submission as recorded by the business.
type Inquiry struct {
	ID           uuid.UUID      `json:"id"`
	Form         ContactInquiry `json:"form"`
	Status       InquiryStatus  `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}
