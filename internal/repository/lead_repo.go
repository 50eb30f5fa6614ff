package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mestraaurora/aurora-api/internal/models"
)

// ErrStoreUnavailable is returned by the placeholder store used when no database is reachable.
var ErrStoreUnavailable = errors.New("lead store unavailable")

// LeadRepository persists leads. It is insert-only.
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
}

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository constructs a repository backed by GORM.
func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *models.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

type unavailableLeadRepository struct {
	cause error
}

// NewUnavailableLeadRepository returns a store whose writes always fail with ErrStoreUnavailable.
func NewUnavailableLeadRepository(cause error) LeadRepository {
	return unavailableLeadRepository{cause: cause}
}

func (r unavailableLeadRepository) Create(context.Context, *models.Lead) error {
	if r.cause != nil {
		return errors.Join(ErrStoreUnavailable, r.cause)
	}
	return ErrStoreUnavailable
}
