package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils"
	"github.com/google/uuid"
)

type InquiryRepository interface {
	CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error
	UpdateInquiryStatus(ctx context.Context, id uuid.UUID, status models.InquiryStatus, errorMsg string) error
}

type postgresInquiryRepository struct {
	DB *sql.DB
}

func NewPostgresInquiryRepo(db *sql.DB) InquiryRepository {
	return &postgresInquiryRepository{DB: db}
}

func (r *postgresInquiryRepository) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	form, err := json.Marshal(inquiry.Form)
	if err != nil {
		return fmt.Errorf("failed to marshal inquiry form: %w", err)
	}

	query := `
		INSERT INTO inquiries (id, email, form, status, error_message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`

	_, err = r.DB.ExecContext(dbCtx, query, inquiry.ID, inquiry.Form.Email, form, inquiry.Status, inquiry.ErrorMessage, inquiry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	return nil
}

func (r *postgresInquiryRepository) UpdateInquiryStatus(ctx context.Context, id uuid.UUID, status models.InquiryStatus, errorMsg string) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE inquiries SET status = $1, error_message = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := r.DB.ExecContext(dbCtx, query, status, errorMsg, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

type memoryInquiryRepository struct {
	mu        sync.Mutex
	inquiries map[uuid.UUID]models.Inquiry
}

func NewMemoryInquiryRepo() InquiryRepository {
	return &memoryInquiryRepository{inquiries: make(map[uuid.UUID]models.Inquiry)}
}

func (r *memoryInquiryRepository) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.inquiries[inquiry.ID] = *inquiry
	r.mu.Unlock()

	return nil
}

func (r *memoryInquiryRepository) UpdateInquiryStatus(ctx context.Context, id uuid.UUID, status models.InquiryStatus, errorMsg string) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	inquiry, ok := r.inquiries[id]
	if !ok {
		return sql.ErrNoRows
	}

	inquiry.Status = status
	inquiry.ErrorMessage = errorMsg
	r.inquiries[id] = inquiry

	return nil
}
