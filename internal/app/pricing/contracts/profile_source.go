package contracts

import (
	"context"

	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/domain"
)

// ProfileSource builds the discount profile for a user.
type ProfileSource interface {
	// GetProfile returns the user's discount profile, or nil (with a nil
	// error) for anonymous users, unknown users, and accounts without B2B
	// standing. Callers must treat nil as "apply only promotional overrides,
	// otherwise list price".
	GetProfile(ctx context.Context, userID string) (*domain.DiscountProfile, error)
}
