package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_discount_group"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_group_category_discount"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_group_combo_discount"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_group_manufacturer_discount"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_group_member"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_user"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_user_category_discount"
	"github.com/light-bringer/parts-pricing-service/internal/pkg/query"
)

// ProfileRepo implements ProfileSource for Spanner. It is the profile
// builder: one call materializes everything the resolver may consult for a
// user, so resolution itself never touches storage.
type ProfileRepo struct {
	client *spanner.Client
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(client *spanner.Client) contracts.ProfileSource {
	return &ProfileRepo{client: client}
}

// GetProfile loads the user's flat discount, personal category discounts and
// discount-group rules into an immutable DiscountProfile. It returns nil (and
// no error) for an empty user id, an unknown user, or a non-B2B account.
//
// Missing rule rows degrade to empty maps; out-of-range percents are rejected
// here so they never reach the resolver.
func (r *ProfileRepo) GetProfile(ctx context.Context, userID string) (*domain.DiscountProfile, error) {
	if userID == "" {
		return nil, nil
	}

	row, err := r.client.Single().ReadRow(ctx, m_user.TableName, spanner.Key{userID}, []string{
		m_user.UserID,
		m_user.Email,
		m_user.AccountType,
		m_user.DiscountPercent,
		m_user.CreatedAt,
		m_user.UpdatedAt,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	var user m_user.Data
	if err := row.ToStruct(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}

	if user.AccountType != m_user.AccountTypeB2B {
		return nil, nil
	}

	personal, err := r.personalDiscounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	groups, err := r.groupRules(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := domain.NewDiscountProfile(userID, user.DiscountPercent, personal, groups)
	if err != nil {
		return nil, fmt.Errorf("invalid discount data for user %s: %w", userID, err)
	}
	return profile, nil
}

// personalDiscounts loads the user's per-category overrides.
func (r *ProfileRepo) personalDiscounts(ctx context.Context, userID string) (map[string]float64, error) {
	stmt := query.From(m_user_category_discount.TableName).
		Select(m_user_category_discount.UserID, m_user_category_discount.CategoryID, m_user_category_discount.DiscountPercent).
		Where(query.Eq(m_user_category_discount.UserID, userID)).
		Build()

	discounts := make(map[string]float64)
	err := r.queryRows(ctx, stmt, func(row *spanner.Row) error {
		var data m_user_category_discount.Data
		if err := row.ToStruct(&data); err != nil {
			return fmt.Errorf("failed to parse personal discount: %w", err)
		}
		discounts[data.CategoryID] = data.DiscountPercent
		return nil
	})
	if err != nil {
		return nil, err
	}
	return discounts, nil
}

// groupRules loads the user's discount-group memberships with their three
// rule maps, ordered by priority ascending. The secondary group_id ordering
// makes retrieval order deterministic when priorities collide; upstream
// should prevent such collisions, but the tie-break must not depend on
// storage whim.
func (r *ProfileRepo) groupRules(ctx context.Context, userID string) ([]*domain.DiscountGroup, error) {
	memberStmt := query.From(m_group_member.TableName).
		Select(m_group_member.GroupID).
		Where(query.Eq(m_group_member.UserID, userID)).
		Build()

	var groupIDs []string
	err := r.queryRows(ctx, memberStmt, func(row *spanner.Row) error {
		var groupID string
		if err := row.Column(0, &groupID); err != nil {
			return fmt.Errorf("failed to parse membership: %w", err)
		}
		groupIDs = append(groupIDs, groupID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(groupIDs) == 0 {
		return nil, nil
	}

	categoryRules, err := r.categoryRules(ctx, groupIDs)
	if err != nil {
		return nil, err
	}
	manufacturerRules, err := r.manufacturerRules(ctx, groupIDs)
	if err != nil {
		return nil, err
	}
	comboRules, err := r.comboRules(ctx, groupIDs)
	if err != nil {
		return nil, err
	}

	groupStmt := query.From(m_discount_group.TableName).
		Select(
			m_discount_group.GroupID,
			m_discount_group.Name,
			m_discount_group.Priority,
			m_discount_group.StackingStrategy,
			m_discount_group.CreatedAt,
		).
		Where(query.In(m_discount_group.GroupID, groupIDs)).
		OrderBy(m_discount_group.Priority, query.Asc).
		OrderBy(m_discount_group.GroupID, query.Asc).
		Build()

	var groups []*domain.DiscountGroup
	err = r.queryRows(ctx, groupStmt, func(row *spanner.Row) error {
		var data m_discount_group.Data
		if err := row.ToStruct(&data); err != nil {
			return fmt.Errorf("failed to parse discount group: %w", err)
		}

		group, err := domain.NewDiscountGroup(
			data.GroupID,
			data.Name,
			data.Priority,
			domain.StackingStrategy(data.StackingStrategy),
			categoryRules[data.GroupID],
			manufacturerRules[data.GroupID],
			comboRules[data.GroupID],
		)
		if err != nil {
			return fmt.Errorf("invalid discount group %s: %w", data.GroupID, err)
		}
		groups = append(groups, group)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *ProfileRepo) categoryRules(ctx context.Context, groupIDs []string) (map[string]map[string]float64, error) {
	stmt := query.From(m_group_category_discount.TableName).
		Select(m_group_category_discount.GroupID, m_group_category_discount.CategoryID, m_group_category_discount.DiscountPercent).
		Where(query.In(m_group_category_discount.GroupID, groupIDs)).
		Build()

	rules := make(map[string]map[string]float64)
	err := r.queryRows(ctx, stmt, func(row *spanner.Row) error {
		var data m_group_category_discount.Data
		if err := row.ToStruct(&data); err != nil {
			return fmt.Errorf("failed to parse category rule: %w", err)
		}
		if rules[data.GroupID] == nil {
			rules[data.GroupID] = make(map[string]float64)
		}
		rules[data.GroupID][data.CategoryID] = data.DiscountPercent
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *ProfileRepo) manufacturerRules(ctx context.Context, groupIDs []string) (map[string]map[string]float64, error) {
	stmt := query.From(m_group_manufacturer_discount.TableName).
		Select(m_group_manufacturer_discount.GroupID, m_group_manufacturer_discount.ManufacturerID, m_group_manufacturer_discount.DiscountPercent).
		Where(query.In(m_group_manufacturer_discount.GroupID, groupIDs)).
		Build()

	rules := make(map[string]map[string]float64)
	err := r.queryRows(ctx, stmt, func(row *spanner.Row) error {
		var data m_group_manufacturer_discount.Data
		if err := row.ToStruct(&data); err != nil {
			return fmt.Errorf("failed to parse manufacturer rule: %w", err)
		}
		if rules[data.GroupID] == nil {
			rules[data.GroupID] = make(map[string]float64)
		}
		rules[data.GroupID][data.ManufacturerID] = data.DiscountPercent
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *ProfileRepo) comboRules(ctx context.Context, groupIDs []string) (map[string]map[domain.CategoryManufacturer]float64, error) {
	stmt := query.From(m_group_combo_discount.TableName).
		Select(
			m_group_combo_discount.GroupID,
			m_group_combo_discount.CategoryID,
			m_group_combo_discount.ManufacturerID,
			m_group_combo_discount.DiscountPercent,
		).
		Where(query.In(m_group_combo_discount.GroupID, groupIDs)).
		Build()

	rules := make(map[string]map[domain.CategoryManufacturer]float64)
	err := r.queryRows(ctx, stmt, func(row *spanner.Row) error {
		var data m_group_combo_discount.Data
		if err := row.ToStruct(&data); err != nil {
			return fmt.Errorf("failed to parse combo rule: %w", err)
		}
		if rules[data.GroupID] == nil {
			rules[data.GroupID] = make(map[domain.CategoryManufacturer]float64)
		}
		key := domain.CategoryManufacturer{CategoryID: data.CategoryID, ManufacturerID: data.ManufacturerID}
		rules[data.GroupID][key] = data.DiscountPercent
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// queryRows runs a statement and invokes fn for every row.
func (r *ProfileRepo) queryRows(ctx context.Context, stmt spanner.Statement, fn func(*spanner.Row) error) error {
	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}
		if err := fn(row); err != nil {
			return err
		}
	}
}
