package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier answers whether an email/password pair belongs to a
// known account. Unknown email and wrong password both report ok=false.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (identity *models.Identity, ok bool, err error)
	Exists(ctx context.Context, email string) (bool, error)
}

type credentialRecord struct {
	identity     models.Identity
	passwordHash []byte
}

// mockCredentialRepository is a fixed, read-only account directory.
// Registration never adds to it.
type mockCredentialRepository struct {
	once    sync.Once
	records map[string]credentialRecord
	initErr error
	cost    int
}

func NewMockCredentialRepo() CredentialVerifier {
	return &mockCredentialRepository{cost: bcrypt.DefaultCost}
}

// NewMockCredentialRepoWithCost lets tests hash the demo password cheaply.
func NewMockCredentialRepoWithCost(cost int) CredentialVerifier {
	return &mockCredentialRepository{cost: cost}
}

func (r *mockCredentialRepository) load() error {

	r.once.Do(func() {

		hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), r.cost)
		if err != nil {
			r.initErr = fmt.Errorf("failed to hash demo credential: %w", err)
			return
		}

		r.records = map[string]credentialRecord{
			DemoEmail: {identity: demoIdentity(), passwordHash: hash},
		}

	})

	return r.initErr
}

func (r *mockCredentialRepository) Verify(ctx context.Context, email, password string) (*models.Identity, bool, error) {

	if err := r.load(); err != nil {
		return nil, false, err
	}

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	record, found := r.records[email]
	if !found {
		return nil, false, nil
	}

	if err := bcrypt.CompareHashAndPassword(record.passwordHash, []byte(password)); err != nil {

		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to compare credentials: %w", err)
	}

	identity := record.identity

	return &identity, true, nil
}

func (r *mockCredentialRepository) Exists(ctx context.Context, email string) (bool, error) {

	if err := r.load(); err != nil {
		return false, err
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, found := r.records[email]

	return found, nil
}
