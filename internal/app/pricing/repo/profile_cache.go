package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/domain"
)

const profileKeyPrefix = "pricing:profile:"

// CachedProfileSource is a read-through Redis cache in front of a
// ProfileSource. Profiles are request-scoped snapshots, so a short TTL is
// enough; a stale entry only delays a rule change, it never corrupts a
// resolution. Cache failures degrade to the underlying source.
type CachedProfileSource struct {
	source contracts.ProfileSource
	redis  *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewCachedProfileSource creates a caching decorator around source.
func NewCachedProfileSource(source contracts.ProfileSource, client *redis.Client, ttl time.Duration, logger zerolog.Logger) contracts.ProfileSource {
	return &CachedProfileSource{
		source: source,
		redis:  client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetProfile returns the cached profile when present, otherwise builds it
// from the source and stores the result. Nil profiles (retail accounts,
// unknown users) are cached too, so anonymous-heavy traffic does not hammer
// the user tables.
func (c *CachedProfileSource) GetProfile(ctx context.Context, userID string) (*domain.DiscountProfile, error) {
	if userID == "" {
		return nil, nil
	}
	key := profileKeyPrefix + userID

	payload, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		profile, decodeErr := decodeProfile(payload)
		if decodeErr == nil {
			return profile, nil
		}
		c.logger.Warn().Err(decodeErr).Str("user_id", userID).Msg("discarding corrupt cached profile")
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn().Err(err).Str("user_id", userID).Msg("profile cache read failed")
	}

	profile, err := c.source.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if payload, encodeErr := encodeProfile(profile); encodeErr == nil {
		if setErr := c.redis.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			c.logger.Warn().Err(setErr).Str("user_id", userID).Msg("profile cache write failed")
		}
	}

	return profile, nil
}

// profileData is the cache wire form of a DiscountProfile. Combo rules are a
// slice because struct-keyed maps do not serialize to JSON.
type profileData struct {
	UserID                    string             `json:"user_id"`
	FlatDiscount              float64            `json:"flat_discount"`
	PersonalCategoryDiscounts map[string]float64 `json:"personal_category_discounts,omitempty"`
	Groups                    []groupData        `json:"groups,omitempty"`
}

type groupData struct {
	ID                    string             `json:"id"`
	Name                  string             `json:"name"`
	Priority              int64              `json:"priority"`
	Strategy              string             `json:"strategy"`
	CategoryDiscounts     map[string]float64 `json:"category_discounts,omitempty"`
	ManufacturerDiscounts map[string]float64 `json:"manufacturer_discounts,omitempty"`
	ComboDiscounts        []comboData        `json:"combo_discounts,omitempty"`
}

type comboData struct {
	CategoryID      string  `json:"category_id"`
	ManufacturerID  string  `json:"manufacturer_id"`
	DiscountPercent float64 `json:"discount_percent"`
}

func encodeProfile(profile *domain.DiscountProfile) ([]byte, error) {
	if profile == nil {
		return json.Marshal(nil)
	}

	data := profileData{
		UserID:                    profile.UserID(),
		FlatDiscount:              profile.FlatDiscount(),
		PersonalCategoryDiscounts: profile.PersonalCategoryDiscounts(),
	}
	for _, group := range profile.Groups() {
		gd := groupData{
			ID:                    group.ID(),
			Name:                  group.Name(),
			Priority:              group.Priority(),
			Strategy:              string(group.Strategy()),
			CategoryDiscounts:     group.CategoryDiscounts(),
			ManufacturerDiscounts: group.ManufacturerDiscounts(),
		}
		for key, percent := range group.CategoryManufacturerDiscounts() {
			gd.ComboDiscounts = append(gd.ComboDiscounts, comboData{
				CategoryID:      key.CategoryID,
				ManufacturerID:  key.ManufacturerID,
				DiscountPercent: percent,
			})
		}
		data.Groups = append(data.Groups, gd)
	}
	return json.Marshal(&data)
}

func decodeProfile(payload []byte) (*domain.DiscountProfile, error) {
	var data *profileData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	groups := make([]*domain.DiscountGroup, 0, len(data.Groups))
	for _, gd := range data.Groups {
		combos := make(map[domain.CategoryManufacturer]float64, len(gd.ComboDiscounts))
		for _, combo := range gd.ComboDiscounts {
			key := domain.CategoryManufacturer{CategoryID: combo.CategoryID, ManufacturerID: combo.ManufacturerID}
			combos[key] = combo.DiscountPercent
		}

		group, err := domain.NewDiscountGroup(
			gd.ID,
			gd.Name,
			gd.Priority,
			domain.StackingStrategy(gd.Strategy),
			gd.CategoryDiscounts,
			gd.ManufacturerDiscounts,
			combos,
		)
		if err != nil {
			return nil, fmt.Errorf("cached group %s: %w", gd.ID, err)
		}
		groups = append(groups, group)
	}

	profile, err := domain.NewDiscountProfile(data.UserID, data.FlatDiscount, data.PersonalCategoryDiscounts, groups)
	if err != nil {
		return nil, fmt.Errorf("cached profile %s: %w", data.UserID, err)
	}
	return profile, nil
}
