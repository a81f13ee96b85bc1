// Package basket handles basket commands: viewing basket with best deals and changing its content.
package basket

import (
	"context"

	"github.com/MichalMitros/basket-service/internal/platform/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Storage --filename storage.go

// Storage is baskets storage.
type Storage interface {
	// GetDetailedBasket returns user's basket with all items and their prices.
	GetDetailedBasket(ctx context.Context, userID uuid.UUID, retailerID *uuid.UUID) (*models.Basket, error)
	// GetPaginatedBasket returns user's basket with single page of items and their prices.
	GetPaginatedBasket(
		ctx context.Context,
		userID uuid.UUID,
		page, limit uint,
		retailerID *uuid.UUID,
	) (*models.Basket, error)
	// GetActivePriceAlerts returns products with active price alerts for user.
	GetActivePriceAlerts(ctx context.Context, userID uuid.UUID) (models.AlertSet, error)
	// AddToBasket sets quantity of product in user's basket, creating basket if needed.
	AddToBasket(ctx context.Context, userID, productID uuid.UUID, quantity int32) (*models.BasketItem, error)
	// RemoveFromBasket removes product from user's basket.
	RemoveFromBasket(ctx context.Context, userID, productID uuid.UUID) error
	// ClearBasket removes user's basket with all its items.
	ClearBasket(ctx context.Context, userID uuid.UUID) error
}

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Option is custom configuration of Service.
type Option func(s *Service)

// Service handles basket requests.
// It never returns errors, every failure is reported with response status.
type Service struct {
	storage      Storage
	logger       *zerolog.Logger
	defaultPage  uint
	defaultLimit uint
	maxLimit     uint
}

// NewService returns new Service.
func NewService(storage Storage, logger *zerolog.Logger, ops ...Option) *Service {
	svc := &Service{
		storage:      storage,
		logger:       logger,
		defaultPage:  defaultPage,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}

	for _, op := range ops {
		op(svc)
	}

	return svc
}

// WithPagination sets default page, default page size and maximal page size.
func WithPagination(page, limit, max uint) Option {
	return func(s *Service) {
		s.defaultPage = page
		s.defaultLimit = limit
		s.maxLimit = max
	}
}
